// Package service composes the surface store, event queue, detection
// workers and corner store into the detection service used by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	eventqueue "github.com/okian/arcstar/internal/adapters/mq/queue"
	workerpool "github.com/okian/arcstar/internal/adapters/mq/worker"
	"github.com/okian/arcstar/internal/adapters/repository"
	"github.com/okian/arcstar/internal/domain/arcstar"
	"github.com/okian/arcstar/internal/domain/model"
	"github.com/okian/arcstar/internal/domain/sae"
	"github.com/okian/arcstar/pkg/logger"
	"github.com/okian/arcstar/pkg/metrics"
)

const (
	defaultQueueSize      = 100000
	defaultSensorRows     = 180
	defaultSensorCols     = 240
	defaultCornerCapacity = 4096
	defaultMatchRadius    = 5
	stopTimeout           = 10 * time.Second
)

// Service implements the API dependencies for the detection service.
type Service struct {
	mu sync.RWMutex

	surface  *sae.Store
	queue    *eventqueue.InMemoryQueue
	pool     *workerpool.Pool
	corners  *repository.CornerStore
	detector arcstar.Detector

	workerCount    int
	queueSize      int
	rows, cols     int
	splitPolarity  bool
	cornerCapacity int
	matchRadius    uint16

	started   bool
	startedAt time.Time
	cancel    context.CancelFunc

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:    runtime.NumCPU(),
		queueSize:      defaultQueueSize,
		rows:           defaultSensorRows,
		cols:           defaultSensorCols,
		splitPolarity:  true,
		cornerCapacity: defaultCornerCapacity,
		matchRadius:    defaultMatchRadius,
		detector:       arcstar.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the components and starts the workers. Starting a running
// service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting detection service...")

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	var storeOpts []sae.Option
	if !s.splitPolarity {
		storeOpts = append(storeOpts, sae.WithMergedPolarity())
	}
	s.surface = sae.NewStore(s.rows, s.cols, storeOpts...)
	s.queue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	s.corners = repository.NewCornerStore(runCtx, repository.WithCapacity(s.cornerCapacity))
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.surface, s.detector, s.corners)
	s.pool.Start(runCtx)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "detection service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.Int("rows", s.rows),
		logger.Int("cols", s.cols),
		logger.Bool("splitPolarity", s.splitPolarity),
		logger.Int("cornerCapacity", s.cornerCapacity),
	)
	return nil
}

// Stop drains the queue, stops the workers and releases the components.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	s.logger.Info(ctx, "stopping detection service...")

	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "worker pool did not drain", logger.Error(err))
	}
	if err := s.corners.Close(); err != nil {
		s.logger.Warn(ctx, "corner store close failed", logger.Error(err))
	}
	s.cancel()

	s.started = false
	s.logger.Info(ctx, "detection service stopped",
		logger.Uint64("processed", s.pool.Processed()),
		logger.Uint64("corners", s.pool.Corners()),
		logger.Duration("uptime", time.Since(s.startedAt)),
	)
}

// Submit validates and enqueues an event. It returns ErrOutOfBounds for
// events outside the sensor and the queue error on backpressure.
func (s *Service) Submit(ctx context.Context, evt model.Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	if !s.surface.Contains(evt) {
		metrics.RecordEventDropped("out_of_bounds")
		return fmt.Errorf("%s on %dx%d sensor: %w", evt, s.rows, s.cols, ErrOutOfBounds)
	}
	if err := s.queue.TryEnqueue(ctx, evt); err != nil {
		metrics.RecordEventDropped("backpressure")
		return fmt.Errorf("enqueue %s: %w", evt, err)
	}
	metrics.RecordEventReceived()
	return nil
}

// Enqueue submits an event for asynchronous detection and reports whether
// it was accepted.
func (s *Service) Enqueue(ctx context.Context, evt model.Event) bool {
	err := s.Submit(ctx, evt)
	if err != nil {
		s.log().Debug(ctx, "event rejected", logger.String("event", evt.String()), logger.Error(err))
	}
	return err == nil
}

// Detect classifies evt against the current surface without stamping it.
func (s *Service) Detect(ctx context.Context, evt model.Event) (model.Event, arcstar.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return model.Event{}, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return model.Event{}, 0, ErrNotStarted
	}
	if !s.surface.Contains(evt) {
		return model.Event{}, 0, fmt.Errorf("%s on %dx%d sensor: %w", evt, s.rows, s.cols, ErrOutOfBounds)
	}

	var (
		out     model.Event
		outcome arcstar.Outcome
	)
	s.surface.View(evt.Polarity, func(surf sae.Surface) {
		out, outcome = s.detector.Classify(surf, evt)
	})
	return out, outcome, nil
}

// Recent returns up to n of the most recent corners, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]repository.Corner, error) {
	corners, err := s.cornerStore()
	if err != nil {
		return nil, err
	}
	return corners.Recent(ctx, n)
}

// Corner returns the corner with the given ID.
func (s *Service) Corner(ctx context.Context, id uuid.UUID) (repository.Corner, error) {
	corners, err := s.cornerStore()
	if err != nil {
		return repository.Corner{}, err
	}
	return corners.Get(ctx, id)
}

// Match returns the stored corner near probe with the most alike descriptor.
func (s *Service) Match(ctx context.Context, probe model.Event) (repository.Corner, float64, error) {
	corners, err := s.cornerStore()
	if err != nil {
		return repository.Corner{}, 0, err
	}
	return corners.Match(ctx, probe, s.matchRadius)
}

// Shape returns the sensor extent.
func (s *Service) Shape() (rows, cols int) {
	return s.rows, s.cols
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":        s.started,
		"workerCount":    s.workerCount,
		"queueSize":      s.queueSize,
		"sensorRows":     s.rows,
		"sensorCols":     s.cols,
		"splitPolarity":  s.splitPolarity,
		"cornerCapacity": s.cornerCapacity,
		"matchRadius":    s.matchRadius,
	}
	if s.started {
		stats["queueLength"] = s.queue.Len(ctx)
		stats["processed"] = s.pool.Processed()
		stats["corners"] = s.pool.Corners()
		stats["retainedCorners"] = s.corners.Count(ctx)
		stats["surfaces"] = s.surface.Planes()
		stats["uptimeSeconds"] = time.Since(s.startedAt).Seconds()
	}
	return stats
}

func (s *Service) cornerStore() (*repository.CornerStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.corners, nil
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}
