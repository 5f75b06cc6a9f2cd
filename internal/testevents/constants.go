package testevents

import "time"

// HTTP status code constants.
const (
	StatusOK       = 200
	StatusAccepted = 202
)

// Runner configuration constants.
const (
	DrainPollInterval    = 100 * time.Millisecond
	PercentageMultiplier = 100
)
