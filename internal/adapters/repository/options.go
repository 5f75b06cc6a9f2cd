package repository

import "time"

// Option applies a configuration option to the CornerStore.
type Option func(*CornerStore)

// WithCapacity sets how many corners are retained.
func WithCapacity(capacity int) Option {
	return func(s *CornerStore) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *CornerStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}

// WithClock overrides the time source used to stamp corners.
func WithClock(now func() time.Time) Option {
	return func(s *CornerStore) {
		if now != nil {
			s.now = now
		}
	}
}
