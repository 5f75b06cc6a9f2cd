package testevents

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/arcstar/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "test_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.InitWithWriter(io.MultiWriter(os.Stdout, file), logger.FormatText); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the test events tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Arcstar Event Test Tool
=======================

Renders bright squares sliding across the sensor, posts their events to a
running arcstar service, and checks that the detected corners follow the
squares' true corners.

Usage:
  go run cmd/test-events/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -rows int / -cols int
        Sensor extent, must match the service (default 180x240)
  -side int
        Square side in pixels (default 20)
  -speed int
        Columns moved per step (default 1)
  -squares int
        Number of squares, 0 for as many as fit (default 0)
  -batch int
        Events per request (default 256)
  -workers int
        Number of concurrent lane submitters (default CPU cores)
  -limit int
        Corners fetched for verification (default 100)
  -tolerance float
        Pixel distance to a true corner counted as on track (default 2)
  -min-precision float
        Minimum share of on-track corners (default 0.5)
  -timeout duration
        HTTP request timeout (default 30s)
  -settle duration
        Maximum wait for the service to process the events (default 30s)
  -output string
        Output file for generated events (default: not written)
  -log string
        Log file for test output (default: test_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/test-events/main.go

  # Two fast squares against a service on another port
  go run cmd/test-events/main.go -squares 2 -speed 2 -url http://localhost:8080
`)
}
