package arcstar

import (
	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
)

const (
	ring3Size = 16
	ring4Size = 20

	// borderInset is the number of pixels next to each edge where no
	// corner can be evaluated, set by the radius of the outer ring.
	borderInset = 4
)

// ring is a discretized circle around a candidate pixel together with the
// arc length bounds a corner must satisfy on it.
type ring struct {
	offsets [][2]int // (drow, dcol), clockwise from (0, +r)
	minArc  int
	maxArc  int
}

var ring3 = ring{
	offsets: [][2]int{
		{0, 3}, {1, 3}, {2, 2}, {3, 1},
		{3, 0}, {3, -1}, {2, -2}, {1, -3},
		{0, -3}, {-1, -3}, {-2, -2}, {-3, -1},
		{-3, 0}, {-3, 1}, {-2, 2}, {-1, 3},
	},
	minArc: 3,
	maxArc: 6,
}

var ring4 = ring{
	offsets: [][2]int{
		{0, 4}, {1, 4}, {2, 3}, {3, 2},
		{4, 1}, {4, 0}, {4, -1}, {3, -2},
		{2, -3}, {1, -4}, {0, -4}, {-1, -4},
		{-2, -3}, {-3, -2}, {-4, -1}, {-4, 0},
		{-4, 1}, {-3, 2}, {-2, 3}, {-1, 4},
	},
	minArc: 4,
	maxArc: 8,
}

func (r ring) size() int { return len(r.offsets) }

// valid reports whether an arc of length n on r bounds a corner, either
// directly or as the complement of a short background arc.
func (r ring) valid(n int) bool {
	size := r.size()
	return n <= r.maxArc || (n >= size-r.maxArc && n <= size-r.minArc)
}

// sampleRing fills dst with the surface values on r around (row, col), in
// ring order. The caller guarantees the whole ring lies inside the surface.
func sampleRing(s sae.Surface, row, col int, r ring, dst []model.Time) []model.Time {
	dst = dst[:0]
	for _, off := range r.offsets {
		dst = append(dst, s.At(row+off[0], col+off[1]))
	}
	return dst
}

// onBorder reports whether (row, col) is too close to an edge of a
// rows x cols surface for the outer ring to fit.
func onBorder(row, col, rows, cols int) bool {
	return col < borderInset || col >= cols-borderInset ||
		row < borderInset || row >= rows-borderInset
}
