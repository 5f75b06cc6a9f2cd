package sae

import (
	"fmt"
	"sync"

	"github.com/okian/arcstar/internal/domain/model"
)

// Store owns the timestamp surfaces of a sensor. Each polarity gets its own
// surface unless the store was built with WithMergedPolarity.
type Store struct {
	rows, cols int
	split      bool

	mu     sync.RWMutex
	planes map[uint8]*plane
}

type plane struct {
	mu     sync.RWMutex
	matrix *Matrix
}

// NewStore creates a store for a rows x cols sensor.
func NewStore(rows, cols int, opts ...Option) *Store {
	s := &Store{
		rows:   rows,
		cols:   cols,
		split:  true,
		planes: make(map[uint8]*plane),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape returns the sensor extent.
func (s *Store) Shape() (rows, cols int) {
	return s.rows, s.cols
}

// Split reports whether polarities are kept on separate surfaces.
func (s *Store) Split() bool {
	return s.split
}

// Contains reports whether the event lies on the sensor.
func (s *Store) Contains(evt model.Event) bool {
	return int(evt.Row) < s.rows && int(evt.Col) < s.cols
}

// Apply records evt on its surface and then calls fn with that surface while
// still holding the write lock, so fn observes the surface including evt and
// no concurrent writer.
//
// A pixel only moves forward in time: an event older than the pixel's
// current timestamp leaves the surface untouched, skips fn and returns
// ErrStale.
func (s *Store) Apply(evt model.Event, fn func(Surface)) error {
	if !s.Contains(evt) {
		return fmt.Errorf("event at (%d, %d) on %dx%d sensor: %w", evt.Row, evt.Col, s.rows, s.cols, ErrOutOfBounds)
	}
	row, col := int(evt.Row), int(evt.Col)
	p := s.plane(evt.Polarity)
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur := p.matrix.At(row, col); evt.Timestamp < cur {
		return fmt.Errorf("event %s behind surface at %d: %w", evt, cur, ErrStale)
	}
	p.matrix.Set(row, col, evt.Timestamp)
	if fn != nil {
		fn(p.matrix)
	}
	return nil
}

// View calls fn with the surface of the given polarity under a read lock.
func (s *Store) View(polarity uint8, fn func(Surface)) {
	p := s.plane(polarity)
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn(p.matrix)
}

// Planes returns the number of allocated surfaces.
func (s *Store) Planes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.planes)
}

func (s *Store) plane(polarity uint8) *plane {
	key := polarity
	if !s.split {
		key = 0
	}

	s.mu.RLock()
	p, ok := s.planes[key]
	s.mu.RUnlock()
	if ok {
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok = s.planes[key]; ok {
		return p
	}
	p = &plane{matrix: NewMatrix(s.rows, s.cols)}
	s.planes[key] = p
	return p
}
