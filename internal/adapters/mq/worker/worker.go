// Package worker runs the detection loop: take events off the queue, stamp
// them on the surface, classify them and publish corners.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arcstar/internal/domain/arcstar"
	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
	"github.com/okian/arcstar/pkg/logger"
	"github.com/okian/arcstar/pkg/metrics"
)

const (
	poolShutdownTimeout = 30 * time.Second
)

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.Event
}

// Surface records an event and runs fn against the updated surface while no
// other writer can touch it.
type Surface interface {
	Apply(evt model.Event, fn func(sae.Surface)) error
}

// Detector classifies an event against a surface.
type Detector interface {
	Classify(s sae.Surface, evt model.Event) (model.Event, arcstar.Outcome)
}

// Sink receives accepted corners.
type Sink interface {
	Add(ctx context.Context, corner model.Event) (uuid.UUID, error)
}

// Worker processes events until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown stops the worker and waits for it to exit.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for in-process detection.
type InMemoryWorker struct {
	queue    Queue
	surface  Surface
	detector Detector
	sink     Sink
	name     string

	onProcessed func(accepted bool)

	stopOnce sync.Once
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, surface Surface, detector Detector, sink Sink, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    queue,
		surface:  surface,
		detector: detector,
		sink:     sink,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop. It returns when ctx is done, the worker is
// stopped, or the queue is closed and drained.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	events := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := w.processEvent(ctx, evt); err != nil {
				w.logger.Debug(ctx, "event not processed", logger.Error(err))
			}
		}
	}
}

// Done is closed when Run has returned.
func (w *InMemoryWorker) Done() <-chan struct{} {
	return w.done
}

func (w *InMemoryWorker) stop() {
	w.stopOnce.Do(func() { close(w.shutdown) })
}

// Shutdown stops the worker and waits for Run to return.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	w.stop()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processEvent stamps, classifies and, for corners, publishes one event.
func (w *InMemoryWorker) processEvent(ctx context.Context, evt model.Event) error {
	start := time.Now()

	var (
		corner  model.Event
		outcome arcstar.Outcome
	)
	err := w.surface.Apply(evt, func(s sae.Surface) {
		corner, outcome = w.detector.Classify(s, evt)
	})
	if errors.Is(err, sae.ErrStale) {
		// Overtaken by a newer event at the same pixel on another worker.
		metrics.RecordEventDropped("stale")
		metrics.RecordEventProcessed()
		if w.onProcessed != nil {
			w.onProcessed(false)
		}
		return nil
	}
	if err != nil {
		if errors.Is(err, sae.ErrOutOfBounds) {
			metrics.RecordEventDropped("out_of_bounds")
		} else {
			metrics.RecordWorkerError()
		}
		metrics.RecordErrorByComponent("worker", "surface")
		return fmt.Errorf("stamp %s: %w", evt, err)
	}

	metrics.RecordDetectionLatency(float64(time.Since(start).Nanoseconds()) / float64(time.Microsecond))
	metrics.RecordEventProcessed()
	metrics.RecordClassification(outcome.String())

	accepted := outcome == arcstar.Accepted
	if w.onProcessed != nil {
		defer w.onProcessed(accepted)
	}
	if !accepted {
		return nil
	}

	metrics.RecordCornerDetected()
	id, err := w.sink.Add(ctx, corner)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "sink")
		w.logger.Error(ctx, "corner not stored",
			logger.String("event", evt.String()),
			logger.Error(err),
		)
		return fmt.Errorf("store corner %s: %w", evt, err)
	}
	w.logger.Debug(ctx, "corner detected",
		logger.String("id", id.String()),
		logger.Int("row", int(evt.Row)),
		logger.Int("col", int(evt.Col)),
		logger.Uint64("ts", uint64(evt.Timestamp)),
	)
	return nil
}

// Pool manages multiple workers sharing one queue, surface and sink.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue

	started   atomic.Bool
	processed atomic.Uint64
	corners   atomic.Uint64
	active    atomic.Int64

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A count below one uses
// one worker per CPU.
func NewPool(workerCount int, queue Queue, surface Surface, detector Detector, sink Sink) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   queue,
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewInMemoryWorker(queue, surface, detector, sink,
			WithName("worker-"+strconv.Itoa(i)),
			WithProcessedHook(p.recordProcessed),
		)
	}

	metrics.UpdateWorkerCount(workerCount)
	metrics.UpdateWorkerActiveCount(0)
	return p
}

func (p *Pool) recordProcessed(accepted bool) {
	p.processed.Add(1)
	if accepted {
		p.corners.Add(1)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Processed returns the number of classified events.
func (p *Pool) Processed() uint64 {
	return p.processed.Load()
}

// Corners returns the number of accepted corners.
func (p *Pool) Corners() uint64 {
	return p.corners.Load()
}

// Start starts all workers in the pool. Only the first call has an effect.
func (p *Pool) Start(ctx context.Context) {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	for _, w := range p.workers {
		metrics.UpdateWorkerActiveCount(int(p.active.Add(1)))
		go func(w *InMemoryWorker) {
			defer func() { metrics.UpdateWorkerActiveCount(int(p.active.Add(-1))) }()
			w.Run(ctx)
		}(w)
	}
}

// Stop signals every worker to exit and waits for them. Queued events are
// left in the queue.
func (p *Pool) Stop() {
	if !p.started.Load() {
		return
	}
	for _, w := range p.workers {
		w.stop()
	}
	for _, w := range p.workers {
		<-w.done
	}
}

// Shutdown closes the queue, lets the workers drain it and waits for them.
// Workers still running when ctx or the pool timeout expires are stopped.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	if !p.started.Load() {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	var timedOut bool
	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			timedOut = true
			p.logger.Warn(ctx, "worker drain timed out", logger.Int("worker_id", i))
			w.stop()
			<-w.done
		}
	}
	if timedOut {
		return fmt.Errorf("pool drain: %w", shutdownCtx.Err())
	}
	return nil
}
