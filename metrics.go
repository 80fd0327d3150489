package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// This file defines the Prometheus metrics recorded during a run. A batch job
// has no endpoint to scrape, so the counters are pushed to a Pushgateway at
// the end of the run when METRICS_PUSH_URL is configured, and otherwise stay
// local.

// apiRequestsTotal counts forecast API requests by outcome: the HTTP status
// code, or "error" when the request never completed.
var apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherreport_api_requests_total",
	Help: "Total number of forecast API requests by outcome.",
}, []string{"outcome"})

// reportsWrittenTotal counts report files written, by frequency.
var reportsWrittenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherreport_reports_written_total",
	Help: "Total number of report files written by frequency.",
}, []string{"frequency"})

// runDurationSeconds records the elapsed wall-clock time of the run.
var runDurationSeconds = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "weatherreport_run_duration_seconds",
	Help: "Elapsed wall-clock duration of the last run in seconds.",
})

// pushRunMetrics sends the run's metrics to the configured Pushgateway,
// grouped by run ID so successive runs do not overwrite each other.
func pushRunMetrics(cfg *appConfig, run RunContext) error {
	if cfg.metricsPushURL == "" {
		return nil
	}
	err := push.New(cfg.metricsPushURL, "weatherreport").
		Gatherer(prometheus.DefaultGatherer).
		Grouping("run_id", run.RunID.String()).
		Push()
	if err != nil {
		return fmt.Errorf("could not push run metrics: %w", err)
	}
	return nil
}
