// Package model contains domain models passed between layers.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Time is the timestamp unit stored in a Surface of Active Events.
// Zero conventionally means no event has been recorded at a pixel.
type Time = uint32

// DescriptorLen is the number of values in a corner descriptor:
// 16 from the radius-3 ring followed by 20 from the radius-4 ring.
const DescriptorLen = 36

// Descriptor is a normalized appearance vector attached to a corner event.
type Descriptor [DescriptorLen]float64

// Event is a single change event reported by an event camera.
type Event struct {
	Row       uint16
	Col       uint16
	Polarity  uint8
	Timestamp Time

	// Descriptor is set only on events classified as corners.
	Descriptor *Descriptor
}

// Clone returns a copy of e that owns its own descriptor.
func (e Event) Clone() Event {
	out := e
	if e.Descriptor != nil {
		d := *e.Descriptor
		out.Descriptor = &d
	}
	return out
}

// Equal reports whether two events share location, polarity and timestamp.
// Descriptors are not compared.
func (e Event) Equal(o Event) bool {
	return e.Row == o.Row &&
		e.Col == o.Col &&
		e.Polarity == o.Polarity &&
		e.Timestamp == o.Timestamp
}

// String renders the event without its descriptor.
func (e Event) String() string {
	return fmt.Sprintf("Event{row: %d, col: %d, time: %d, pol: %d}", e.Row, e.Col, e.Timestamp, e.Polarity)
}

// SpatialDist2 returns the squared pixel distance between two events.
func (e Event) SpatialDist2(o Event) uint64 {
	dr := uint64(absDiff(e.Row, o.Row))
	dc := uint64(absDiff(e.Col, o.Col))
	return dr*dr + dc*dc
}

// RectilinearDist returns the Manhattan pixel distance between two events.
func (e Event) RectilinearDist(o Event) uint32 {
	return absDiff(e.Row, o.Row) + absDiff(e.Col, o.Col)
}

// Likeness scores how similar two corner descriptors are, in [0, 1].
// It is the histogram intersection of both descriptors divided by the larger
// of their totals. Events without a descriptor score 0, as do two descriptors
// whose totals are both zero.
func (e Event) Likeness(o Event) float64 {
	if e.Descriptor == nil || o.Descriptor == nil {
		return 0
	}
	a, b := e.Descriptor[:], o.Descriptor[:]

	var minTotal float64
	for i := range a {
		minTotal += min(a[i], b[i])
	}
	maxTotal := max(floats.Sum(a), floats.Sum(b))
	if maxTotal == 0 {
		return 0
	}
	return minTotal / maxTotal
}

func absDiff(a, b uint16) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}
