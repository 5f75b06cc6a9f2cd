package testevents

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/arcstar/pkg/logger"
)

// ErrLowPrecision is returned when too few detected corners lie on the
// squares' true corners.
var ErrLowPrecision = errors.New("corner precision below threshold")

// Report summarizes how well detected corners follow the true corners.
type Report struct {
	Checked   int     // corners that map to a lane and step of the scenario
	OnTrack   int     // checked corners within tolerance of a true corner
	Foreign   int     // corners that do not belong to the scenario
	Precision float64 // OnTrack / Checked
	MeanError float64 // mean distance of on-track corners to the true corner
	StdError  float64
}

// Verify measures each corner against the nearest true corner of the square
// that produced it.
func Verify(s Scenario, corners []Corner, tolerance float64) Report {
	var (
		report Report
		errs   []float64
	)
	slack := int(math.Ceil(tolerance))
	for _, c := range corners {
		lane, step, ok := s.Locate(int(c.Row), c.TS, slack)
		if !ok {
			report.Foreign++
			continue
		}
		report.Checked++

		at := []float64{float64(c.Row), float64(c.Col)}
		best := math.Inf(1)
		for _, truth := range s.Corners(lane, step) {
			best = math.Min(best, floats.Distance(at, truth[:], 2))
		}
		if best <= tolerance {
			report.OnTrack++
			errs = append(errs, best)
		}
	}
	if report.Checked > 0 {
		report.Precision = float64(report.OnTrack) / float64(report.Checked)
	}
	switch {
	case len(errs) > 1:
		report.MeanError, report.StdError = stat.MeanStdDev(errs, nil)
	case len(errs) == 1:
		report.MeanError = errs[0]
	}
	return report
}

// verifyResults checks the fetched corners against the scenario.
func verifyResults(ctx context.Context, config *Config, corners []Corner, stats *Stats) error {
	logger.Get().Info(ctx, "verifying corners", logger.Int("corners", len(corners)))

	if len(corners) == 0 {
		return errors.New("no corners to verify")
	}
	report := Verify(config.Scenario, corners, config.Tolerance)
	stats.Report = report

	logger.Get().Info(ctx, "verification report",
		logger.Int("checked", report.Checked),
		logger.Int("onTrack", report.OnTrack),
		logger.Int("foreign", report.Foreign),
		logger.Float64("precision", report.Precision),
		logger.Float64("meanError", report.MeanError),
		logger.Float64("stdError", report.StdError))

	if report.Checked == 0 {
		return errors.New("no corners belong to this run")
	}
	if report.Precision < config.MinPrecision {
		return fmt.Errorf("%.3f < %.3f: %w", report.Precision, config.MinPrecision, ErrLowPrecision)
	}
	return nil
}
