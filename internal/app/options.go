package service

import "github.com/okian/arcstar/pkg/logger"

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of detection workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the event queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithSensorSize sets the sensor extent in pixels.
func WithSensorSize(rows, cols int) Option {
	return func(s *Service) {
		if rows > 0 && cols > 0 {
			s.rows, s.cols = rows, cols
		}
	}
}

// WithSplitPolarity selects one surface per polarity (true) or a single
// shared surface (false).
func WithSplitPolarity(split bool) Option {
	return func(s *Service) {
		s.splitPolarity = split
	}
}

// WithCornerCapacity sets how many recent corners are retained.
func WithCornerCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.cornerCapacity = capacity
		}
	}
}

// WithMatchRadius sets the search radius in pixels used by Match.
func WithMatchRadius(radius uint16) Option {
	return func(s *Service) {
		s.matchRadius = radius
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
