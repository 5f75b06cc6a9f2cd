package repository

import "errors"

// Sentinel kinds for corner store errors.
var (
	ErrNotFound     = errors.New("corner not found")
	ErrInvalidLimit = errors.New("invalid corner limit")
	ErrNoDescriptor = errors.New("event has no descriptor")
	ErrClosed       = errors.New("corner store closed")
)
