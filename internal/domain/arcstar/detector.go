// Package arcstar implements the Arc* corner detector for event cameras.
//
// For each incoming event it samples two concentric rings (radius 3 and 4)
// of the surface of active events around the event's pixel, measures the arc
// of freshest timestamps on each ring and accepts the event as a corner when
// both arcs have a corner-like length. Accepted events carry a 36 value
// descriptor of the normalized ring timestamps.
//
// The detector is stateless. It never writes to the surface and does not
// allocate beyond the returned descriptor, so it is safe to call from many
// goroutines as long as each reads a surface no one is writing concurrently.
package arcstar

import (
	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
)

// Outcome is the result of classifying one event.
type Outcome uint8

// Classification outcomes, in the order the checks run.
const (
	Accepted Outcome = iota
	RejectedBorder
	RejectedRing3
	RejectedRing4
	RejectedDegenerate
)

var outcomeNames = [...]string{
	Accepted:           "accepted",
	RejectedBorder:     "rejected_border",
	RejectedRing3:      "rejected_ring3",
	RejectedRing4:      "rejected_ring4",
	RejectedDegenerate: "rejected_degenerate",
}

// String returns a stable snake_case label for the outcome.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Outcomes lists every outcome, e.g. for pre-registering metric labels.
func Outcomes() []Outcome {
	return []Outcome{Accepted, RejectedBorder, RejectedRing3, RejectedRing4, RejectedDegenerate}
}

// Classify runs the detector on evt against s. On Accepted the returned
// event is a copy of evt with its descriptor set; otherwise it is the zero
// Event. evt itself is never modified.
func Classify(s sae.Surface, evt model.Event) (model.Event, Outcome) {
	row, col := int(evt.Row), int(evt.Col)
	rows, cols := s.Shape()
	if onBorder(row, col, rows, cols) {
		return model.Event{}, RejectedBorder
	}

	var buf3 [ring3Size]model.Time
	c3 := sampleRing(s, row, col, ring3, buf3[:])
	i3, f3 := freshest(c3)
	if !ring3.valid(expandArc(c3, ring3.minArc, i3)) {
		return model.Event{}, RejectedRing3
	}

	var buf4 [ring4Size]model.Time
	c4 := sampleRing(s, row, col, ring4, buf4[:])
	i4, f4 := freshest(c4)
	if !ring4.valid(expandArc(c4, ring4.minArc, i4)) {
		return model.Event{}, RejectedRing4
	}

	desc, ok := buildDescriptor(c3, i3, c4, i4, max(f3, f4))
	if !ok {
		return model.Event{}, RejectedDegenerate
	}

	out := evt
	out.Descriptor = &desc
	return out, Accepted
}

// DetectAndCompute reports whether evt is a corner on s and, if it is,
// returns a copy of evt carrying the computed descriptor.
func DetectAndCompute(s sae.Surface, evt model.Event) (model.Event, bool) {
	out, outcome := Classify(s, evt)
	return out, outcome == Accepted
}

// IsCorner reports whether evt is a corner on s.
func IsCorner(s sae.Surface, evt model.Event) bool {
	_, outcome := Classify(s, evt)
	return outcome == Accepted
}

// Detector exposes the package functions as methods so callers can depend
// on an interface.
type Detector struct{}

// New returns a Detector.
func New() Detector {
	return Detector{}
}

// Classify calls the package-level Classify.
func (Detector) Classify(s sae.Surface, evt model.Event) (model.Event, Outcome) {
	return Classify(s, evt)
}

// DetectAndCompute calls the package-level DetectAndCompute.
func (Detector) DetectAndCompute(s sae.Surface, evt model.Event) (model.Event, bool) {
	return DetectAndCompute(s, evt)
}

// IsCorner calls the package-level IsCorner.
func (Detector) IsCorner(s sae.Surface, evt model.Event) bool {
	return IsCorner(s, evt)
}
