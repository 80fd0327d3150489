package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	run := newRunContext(cfg)
	cfg.logger = cfg.logger.With("run_id", run.RunID)
	cfg.logger.Info("run context ready",
		"host_offset_seconds", run.HostOffsetSeconds,
		"file_prefix", run.FilePrefix,
	)

	fmt.Println()
	fmt.Println("***** Weather Forecast program is starting *****")
	fmt.Println()
	fmt.Println("Start time:  ", hostClockTime(run, run.StartedAt))

	locations, err := loadLocations(cfg.locationsPath)
	if err != nil {
		cfg.logger.Error("could not load locations", "error", err)
		os.Exit(1)
	}
	cfg.logger.Info("locations loaded", "locations", len(locations))

	for _, location := range locations {
		cfg.logger.Info("processing location", "location", location.Place)

		payload, err := cfg.fetchForecast(location)
		if err != nil {
			cfg.logger.Error("forecast fetch failed", "location", location.Place, "error", err)
			os.Exit(1)
		}

		if err := cfg.writeReports(run, location, payload); err != nil {
			cfg.logger.Error("report writing failed", "location", location.Place, "error", err)
			os.Exit(1)
		}
	}

	finishedAt := time.Now()
	elapsed := finishedAt.Sub(run.StartedAt)
	runDurationSeconds.Set(elapsed.Seconds())

	if err := pushRunMetrics(cfg, run); err != nil {
		cfg.logger.Warn("metrics push failed", "error", err)
	}

	fmt.Println("Finish time: ", hostClockTime(run, finishedAt))
	fmt.Printf("Elapsed time:  %.2f seconds\n", elapsed.Seconds())
	fmt.Println()
	fmt.Println("***** Weather Forecast program has finished *****")
	fmt.Println()
}

// hostClockTime formats an instant as the host's local HH:MM:SS by shifting
// the UTC reading by the resolved host offset, so the printed times agree
// with the offset used everywhere else in the run.
func hostClockTime(run RunContext, t time.Time) string {
	return t.UTC().Add(time.Duration(run.HostOffsetSeconds) * time.Second).Format("15:04:05")
}
