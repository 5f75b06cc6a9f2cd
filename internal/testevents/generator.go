package testevents

// Scenario renders bright squares sliding right across the sensor, one per
// horizontal lane. Every step moves each square Speed pixels: pixels it
// newly covers fire ON (polarity 1) and pixels it leaves fire OFF
// (polarity 0), all stamped BaseTime + step*TimeStep. The first step fires
// the whole outline.
type Scenario struct {
	Rows, Cols int
	Side       int // square side in pixels
	Margin     int // distance from the sensor edge to the first lane and column
	Gap        int // rows between lanes
	Speed      int // columns per step
	BaseTime   uint32
	TimeStep   uint32
}

// DefaultScenario fits the default 180x240 sensor.
func DefaultScenario() Scenario {
	return Scenario{
		Rows:     180,
		Cols:     240,
		Side:     20,
		Margin:   5,
		Gap:      10,
		Speed:    1,
		BaseTime: 1,
		TimeStep: 10,
	}
}

// Lanes returns how many squares fit above each other.
func (s Scenario) Lanes() int {
	if s.Side < 1 || s.Rows < 2*s.Margin+s.Side {
		return 0
	}
	return (s.Rows - 2*s.Margin + s.Gap) / (s.Side + s.Gap)
}

// Steps returns how many positions each square takes.
func (s Scenario) Steps() int {
	if s.Speed < 1 || s.Cols < 2*s.Margin+s.Side {
		return 0
	}
	return (s.Cols-2*s.Margin-s.Side)/s.Speed + 1
}

// origin returns the top-left pixel of the square in lane at step.
func (s Scenario) origin(lane, step int) (row, col int) {
	return s.Margin + lane*(s.Side+s.Gap), s.Margin + step*s.Speed
}

// Time returns the timestamp of step.
func (s Scenario) Time(step int) uint32 {
	return s.BaseTime + uint32(step)*s.TimeStep //nolint:gosec // steps are bounded by the sensor width
}

// Corners returns the four true corners of the square in lane at step as
// (row, col) pairs.
func (s Scenario) Corners(lane, step int) [4][2]float64 {
	r, c := s.origin(lane, step)
	top, left := float64(r), float64(c)
	bottom, right := float64(r+s.Side-1), float64(c+s.Side-1)
	return [4][2]float64{{top, left}, {top, right}, {bottom, left}, {bottom, right}}
}

// Locate maps a pixel and timestamp back to the lane and step that could
// have produced it. Rows within slack of a lane count as that lane.
func (s Scenario) Locate(row int, ts uint32, slack int) (lane, step int, ok bool) {
	if s.TimeStep == 0 || ts < s.BaseTime || (ts-s.BaseTime)%s.TimeStep != 0 {
		return 0, 0, false
	}
	step = int((ts - s.BaseTime) / s.TimeStep)
	if step >= s.Steps() {
		return 0, 0, false
	}
	for lane = range s.Lanes() {
		top, _ := s.origin(lane, 0)
		if row >= top-slack && row <= top+s.Side-1+slack {
			return lane, step, true
		}
	}
	return 0, 0, false
}

// Generate returns the event stream of lane in timestamp order. Within a
// step, ON events come first, each group in row-major order.
func (s Scenario) Generate(lane int) []Event {
	var events []Event
	for step := range s.Steps() {
		events = s.appendStep(events, lane, step)
	}
	return events
}

func (s Scenario) appendStep(dst []Event, lane, step int) []Event {
	ts := s.Time(step)
	r, c := s.origin(lane, step)
	if step == 0 {
		for row := r; row < r+s.Side; row++ {
			for col := c; col < c+s.Side; col++ {
				if row == r || row == r+s.Side-1 || col == c || col == c+s.Side-1 {
					dst = s.appendEvent(dst, row, col, 1, ts)
				}
			}
		}
		return dst
	}

	prev := c - s.Speed
	covered := func(col, left int) bool { return col >= left && col < left+s.Side }
	for row := r; row < r+s.Side; row++ {
		for col := c; col < c+s.Side; col++ {
			if !covered(col, prev) {
				dst = s.appendEvent(dst, row, col, 1, ts)
			}
		}
	}
	for row := r; row < r+s.Side; row++ {
		for col := prev; col < prev+s.Side; col++ {
			if !covered(col, c) {
				dst = s.appendEvent(dst, row, col, 0, ts)
			}
		}
	}
	return dst
}

func (s Scenario) appendEvent(dst []Event, row, col int, polarity uint8, ts uint32) []Event {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return dst
	}
	return append(dst, Event{Row: uint16(row), Col: uint16(col), Polarity: polarity, TS: ts}) //nolint:gosec // inside the sensor
}
