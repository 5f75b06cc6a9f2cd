package service

import (
	"errors"

	"github.com/okian/arcstar/internal/domain/sae"
)

// Sentinel kinds for service errors.
var (
	ErrNotStarted = errors.New("service not started")

	// ErrOutOfBounds is returned for events outside the configured sensor.
	ErrOutOfBounds = sae.ErrOutOfBounds
)
