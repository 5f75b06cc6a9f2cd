// Package repository keeps recently detected corners in memory.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arcstar/internal/domain/model"
)

// Corner is a detected corner event with its identity.
type Corner struct {
	ID         uuid.UUID
	Event      model.Event
	DetectedAt time.Time
}

// Store provides read/write access to detected corners.
type Store interface {
	// Add stores a corner and returns its ID.
	Add(ctx context.Context, corner model.Event) (uuid.UUID, error)

	// Get returns the corner with the given ID.
	// Returns ErrNotFound if it is unknown or was evicted.
	Get(ctx context.Context, id uuid.UUID) (Corner, error)

	// Recent returns up to n corners, newest first.
	Recent(ctx context.Context, n int) ([]Corner, error)

	// Match returns the stored corner within radius pixels of probe whose
	// descriptor is most alike, along with the likeness.
	Match(ctx context.Context, probe model.Event, radius uint16) (Corner, float64, error)

	// Count returns the number of retained corners.
	Count(ctx context.Context) int
}
