package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/pkg/metrics"
)

const (
	defaultCapacity              = 4096
	defaultMetricsUpdateInterval = 5 * time.Second
)

// CornerStore is a fixed-size ring of the most recent corners. Adding to a
// full store evicts the oldest corner.
type CornerStore struct {
	mu       sync.RWMutex
	ring     []Corner
	head     int // next write position
	count    int
	byID     map[uuid.UUID]int
	capacity int
	closed   bool

	metricsUpdateInterval time.Duration
	now                   func() time.Time

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopChan chan struct{}
}

var _ Store = (*CornerStore)(nil)

// NewCornerStore constructs a corner store with configuration options. The
// background metrics updater stops when ctx is done or Close is called.
func NewCornerStore(ctx context.Context, opts ...Option) *CornerStore {
	s := &CornerStore{
		capacity:              defaultCapacity,
		metricsUpdateInterval: defaultMetricsUpdateInterval,
		now:                   time.Now,
		stopChan:              make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ring = make([]Corner, s.capacity)
	s.byID = make(map[uuid.UUID]int, s.capacity)

	metrics.UpdateCornerStoreSize(0)
	s.startMetricsUpdater(ctx)
	return s
}

// Capacity returns the maximum number of retained corners.
func (s *CornerStore) Capacity() int {
	return s.capacity
}

// Add implements Store.Add. IDs are time-ordered (UUIDv7).
func (s *CornerStore) Add(ctx context.Context, corner model.Event) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("corner id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return uuid.Nil, ErrClosed
	}

	if s.count == s.capacity {
		delete(s.byID, s.ring[s.head].ID)
		metrics.RecordCornerEviction()
	} else {
		s.count++
	}
	s.ring[s.head] = Corner{ID: id, Event: corner.Clone(), DetectedAt: s.now()}
	s.byID[id] = s.head
	s.head = (s.head + 1) % s.capacity
	return id, nil
}

// Get implements Store.Get.
func (s *CornerStore) Get(_ context.Context, id uuid.UUID) (Corner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return Corner{}, fmt.Errorf("corner %s: %w", id, ErrNotFound)
	}
	return cloneCorner(s.ring[idx]), nil
}

// Recent implements Store.Recent.
func (s *CornerStore) Recent(_ context.Context, n int) ([]Corner, error) {
	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n = min(n, s.count)
	out := make([]Corner, 0, n)
	for i := 1; i <= n; i++ {
		idx := (s.head - i + s.capacity) % s.capacity
		out = append(out, cloneCorner(s.ring[idx]))
	}
	return out, nil
}

// Match implements Store.Match. Among corners within radius (Euclidean,
// inclusive) the highest likeness wins, ties going to the newer corner.
func (s *CornerStore) Match(_ context.Context, probe model.Event, radius uint16) (Corner, float64, error) {
	if probe.Descriptor == nil {
		metrics.RecordCornerMatch("no_descriptor")
		return Corner{}, 0, ErrNoDescriptor
	}
	maxDist2 := uint64(radius) * uint64(radius)

	s.mu.RLock()
	defer s.mu.RUnlock()

	best, bestScore := -1, -1.0
	for i := 1; i <= s.count; i++ {
		idx := (s.head - i + s.capacity) % s.capacity
		c := &s.ring[idx]
		if c.Event.Descriptor == nil || c.Event.SpatialDist2(probe) > maxDist2 {
			continue
		}
		if score := c.Event.Likeness(probe); score > bestScore {
			best, bestScore = idx, score
		}
	}
	if best < 0 {
		metrics.RecordCornerMatch("miss")
		return Corner{}, 0, fmt.Errorf("no corner within %d px of (%d, %d): %w", radius, probe.Row, probe.Col, ErrNotFound)
	}
	metrics.RecordCornerMatch("hit")
	return cloneCorner(s.ring[best]), bestScore, nil
}

// Count implements Store.Count.
func (s *CornerStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Close stops the background metrics updater and rejects further writes.
func (s *CornerStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	return nil
}

func (s *CornerStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				metrics.UpdateCornerStoreSize(s.Count(ctx))
			}
		}
	}()
}

func cloneCorner(c Corner) Corner {
	c.Event = c.Event.Clone()
	return c
}
