package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/arcstar/internal/testevents"
	"github.com/okian/arcstar/pkg/logger"
)

// Default configuration constants.
const (
	defaultBatchSize    = 256
	defaultCornerLimit  = 100
	defaultTolerance    = 2.0
	defaultMinPrecision = 0.5
	defaultTimeout      = 30 * time.Second
	defaultSettle       = 30 * time.Second
	defaultTestTimeout  = 10 * time.Minute
)

func main() {
	scenario := testevents.DefaultScenario()
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		rows         = flag.Int("rows", scenario.Rows, "Sensor rows, must match the service")
		cols         = flag.Int("cols", scenario.Cols, "Sensor columns, must match the service")
		side         = flag.Int("side", scenario.Side, "Square side in pixels")
		speed        = flag.Int("speed", scenario.Speed, "Columns moved per step")
		squares      = flag.Int("squares", 0, "Number of squares, 0 for as many as fit")
		batch        = flag.Int("batch", defaultBatchSize, "Events per request")
		workers      = flag.Int("workers", runtime.NumCPU(), "Number of concurrent lane submitters")
		limit        = flag.Int("limit", defaultCornerLimit, "Corners fetched for verification")
		tolerance    = flag.Float64("tolerance", defaultTolerance, "Pixel distance to a true corner counted as on track")
		minPrecision = flag.Float64("min-precision", defaultMinPrecision, "Minimum share of on-track corners")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		settle       = flag.Duration("settle", defaultSettle, "Maximum wait for the service to process the events")
		outputFile   = flag.String("output", "", "Output file for generated events")
		logFile      = flag.String("log", "", "Log file for test output (default: test_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testevents.ShowHelp()
		return
	}

	// Setup logging
	if err := testevents.SetupLogging(*logFile); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	scenario.Rows, scenario.Cols = *rows, *cols
	scenario.Side, scenario.Speed = *side, *speed

	config := &testevents.Config{
		BaseURL:      *baseURL,
		Scenario:     scenario,
		Squares:      *squares,
		BatchSize:    max(1, *batch),
		Workers:      *workers,
		Timeout:      *timeout,
		Settle:       *settle,
		CornerLimit:  *limit,
		Tolerance:    *tolerance,
		MinPrecision: *minPrecision,
		OutputFile:   *outputFile,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	if err := testevents.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel already called
	}
}
