package testevents

import "time"

// Config holds configuration for the event test
type Config struct {
	BaseURL      string        // Base URL of the service
	Scenario     Scenario      // Moving squares to render
	Squares      int           // Number of squares, 0 for as many lanes as fit
	BatchSize    int           // Events per POST /events request
	Workers      int           // Number of concurrent lane submitters
	Timeout      time.Duration // HTTP request timeout
	Settle       time.Duration // Maximum wait for the service to drain
	CornerLimit  int           // Corners fetched for verification
	Tolerance    float64       // Pixel distance to a true corner counted as on track
	MinPrecision float64       // Fail the run below this share of on-track corners
	OutputFile   string        // Output file for events, empty to skip
	LogFile      string        // Log file for test output
	Verbose      bool          // Enable verbose logging
}

// Event is the wire shape of one event posted to /events.
type Event struct {
	Row      uint16 `json:"row"`
	Col      uint16 `json:"col"`
	Polarity uint8  `json:"polarity"`
	TS       uint32 `json:"ts"`
}

// Corner is the wire shape of a corner returned by /corners.
type Corner struct {
	ID         string    `json:"id"`
	Row        uint16    `json:"row"`
	Col        uint16    `json:"col"`
	Polarity   uint8     `json:"polarity"`
	TS         uint32    `json:"ts"`
	DetectedAt time.Time `json:"detected_at"`
	Descriptor []float64 `json:"descriptor"`
}

// AckResponse represents the response from event submission
type AckResponse struct {
	Status   string `json:"status"`
	Accepted int    `json:"accepted"`
}

// Stats holds test statistics
type Stats struct {
	RunID           string
	EventsGenerated int
	EventsAccepted  int
	EventsFailed    int
	BatchesFailed   int
	CornersFetched  int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	Report          Report
}
