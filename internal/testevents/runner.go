package testevents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arcstar/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete event test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}
	log := logger.Get().With(logger.String("run", stats.RunID))

	log.Info(ctx, "starting arcstar event test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rows", config.Scenario.Rows),
		logger.Int("cols", config.Scenario.Cols),
		logger.Int("squares", config.Squares),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
		logger.Float64("tolerance", config.Tolerance),
		logger.Bool("verbose", config.Verbose))

	// Step 1: Check service health
	client := newHTTPClient(config.Timeout)
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	baseline, err := processedCount(ctx, client, config.BaseURL)
	if err != nil {
		return fmt.Errorf("read service stats: %w", err)
	}

	// Step 2: Generate events
	lanes, err := generateLanes(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("event generation failed: %w", err)
	}
	if config.OutputFile != "" {
		if err := saveEventsToFile(ctx, config.OutputFile, lanes); err != nil {
			log.Warn(ctx, "failed to save events to file", logger.Error(err))
		}
	}

	// Step 3: Submit lanes concurrently
	if err := submitLanes(ctx, config, lanes, stats); err != nil {
		return fmt.Errorf("event submission failed: %w", err)
	}

	// Step 4: Wait for processing
	if err := waitForDrain(ctx, client, config, baseline+stats.EventsAccepted); err != nil {
		log.Warn(ctx, "service did not drain in time", logger.Error(err))
	}

	// Step 5: Fetch and verify corners
	corners, err := fetchCorners(ctx, config)
	if err != nil {
		return fmt.Errorf("corner retrieval failed: %w", err)
	}
	corners = detectedSince(corners, stats.StartTime)
	stats.CornersFetched = len(corners)
	if err := verifyResults(ctx, config, corners, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	log.Info(ctx, "test completed successfully")
	return nil
}

// generateLanes renders one event stream per square.
func generateLanes(ctx context.Context, config *Config, stats *Stats) ([][]Event, error) {
	s := config.Scenario
	n := s.Lanes()
	if config.Squares > 0 {
		n = min(n, config.Squares)
	}
	if n == 0 || s.Steps() == 0 {
		return nil, fmt.Errorf("a %dx%d sensor cannot fit a %d pixel square", s.Rows, s.Cols, s.Side)
	}

	lanes := make([][]Event, n)
	for lane := range lanes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during event generation: %w", err)
		}
		lanes[lane] = s.Generate(lane)
		stats.EventsGenerated += len(lanes[lane])
	}

	logger.Get().Info(ctx, "generated events successfully",
		logger.Int("squares", n),
		logger.Int("steps", s.Steps()),
		logger.Int("count", stats.EventsGenerated))
	return lanes, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// waitForDrain polls /stats until the service has processed want events.
func waitForDrain(ctx context.Context, client *HTTPClient, config *Config, want int) error {
	ctx, cancel := context.WithTimeout(ctx, config.Settle)
	defer cancel()

	ticker := time.NewTicker(DrainPollInterval)
	defer ticker.Stop()
	for {
		processed, err := processedCount(ctx, client, config.BaseURL)
		if err == nil && processed >= want {
			return nil
		}
		select {
		case <-ctx.Done():
			if err == nil {
				err = fmt.Errorf("processed %d of %d", processed, want)
			}
			return errors.Join(err, ctx.Err())
		case <-ticker.C:
		}
	}
}

// detectedSince drops corners left over from earlier runs.
func detectedSince(corners []Corner, start time.Time) []Corner {
	out := corners[:0]
	for _, c := range corners {
		if !c.DetectedAt.Before(start) {
			out = append(out, c)
		}
	}
	return out
}

// saveEventsToFile saves the generated lanes to a JSON file.
func saveEventsToFile(ctx context.Context, filename string, lanes [][]Event) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", " ")
	if err := enc.Encode(lanes); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}

	logger.Get().Info(ctx, "events saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the final test statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var acceptRate, eventsPerSecond float64

	if stats.EventsGenerated > 0 {
		acceptRate = float64(stats.EventsAccepted) / float64(stats.EventsGenerated) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		eventsPerSecond = float64(stats.EventsAccepted) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("eventsGenerated", stats.EventsGenerated),
		logger.Int("eventsAccepted", stats.EventsAccepted),
		logger.Int("eventsFailed", stats.EventsFailed),
		logger.Int("batchesFailed", stats.BatchesFailed),
		logger.Int("cornersFetched", stats.CornersFetched),
		logger.Float64("precision", stats.Report.Precision),
		logger.Duration("duration", stats.Duration),
		logger.Float64("acceptRate", acceptRate),
		logger.Float64("eventsPerSecond", eventsPerSecond))
}
