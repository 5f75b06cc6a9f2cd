// Package queue buffers incoming sensor events between ingestion and the
// detection workers.
package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/pkg/metrics"
)

const (
	defaultQueueCapacity = 100000
)

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds an event to the queue.
	// Returns false if the queue is full or closed and the event was dropped.
	Enqueue(ctx context.Context, e model.Event) bool

	// TryEnqueue is Enqueue reporting why an event was dropped.
	TryEnqueue(ctx context.Context, e model.Event) error

	// Dequeue returns a channel that will receive events as they become available.
	// The channel is closed when the queue is closed and drained, or ctx is done.
	Dequeue(ctx context.Context) <-chan model.Event

	// Len returns the current number of queued events.
	Len(ctx context.Context) int

	// Close stops accepting events. Queued events can still be dequeued.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	events     chan model.Event
	capacity   int
	bufferSize int

	mu     sync.RWMutex
	closed bool
}

var _ Queue = (*InMemoryQueue)(nil)

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.bufferSize = max(q.bufferSize, q.capacity)
	q.events = make(chan model.Event, q.bufferSize)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0)

	return q
}

// Capacity returns the maximum number of queued events.
func (q *InMemoryQueue) Capacity() int {
	return q.capacity
}

// Enqueue adds an event to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, e model.Event) bool {
	return q.TryEnqueue(ctx, e) == nil
}

// TryEnqueue adds an event to the queue without blocking. It returns
// ErrQueueClosed, ErrQueueFull or the context error when the event was not
// queued.
func (q *InMemoryQueue) TryEnqueue(ctx context.Context, e model.Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.recordDrop("closed")
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		q.recordDrop("context_cancelled")
		return err
	}
	if len(q.events) >= q.capacity {
		q.recordDrop("capacity_exceeded")
		return ErrQueueFull
	}

	select {
	case q.events <- e:
		metrics.RecordQueueEnqueue()
		q.updateGauges()
		return nil
	default:
		q.recordDrop("queue_full")
		return ErrQueueFull
	}
}

// Dequeue returns a channel that will receive events as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan model.Event {
	out := make(chan model.Event)
	go func() {
		defer close(out)
		for {
			select {
			case evt, ok := <-q.events:
				if !ok {
					return
				}
				select {
				case out <- evt:
					metrics.RecordQueueDequeue()
					q.updateGauges()
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued events.
func (q *InMemoryQueue) Len(_ context.Context) int {
	q.updateGauges()
	return len(q.events)
}

// Close stops accepting events.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.events)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

func (q *InMemoryQueue) updateGauges() {
	size := len(q.events)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
}

func (q *InMemoryQueue) recordDrop(reason string) {
	metrics.RecordQueueEnqueueError()
	metrics.RecordErrorByComponent("queue", reason)
}

// IsBackpressure reports whether err means the queue could not take more
// events right now.
func IsBackpressure(err error) bool {
	return errors.Is(err, ErrQueueFull)
}
