package sae

import "errors"

// Sentinel kinds for surface errors.
var (
	ErrOutOfBounds = errors.New("event outside surface")
	ErrRaggedRows  = errors.New("ragged surface rows")
	ErrStale       = errors.New("event older than surface")
)
