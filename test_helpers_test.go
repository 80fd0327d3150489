package main

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Shared builders for package tests. Payloads are constructed rather than
// decoded so individual tests can vary condition codes, offsets and sample
// counts without a fixture per case.

const testBaseDt = int64(1700000000) // 2023-11-14 22:13:20 UTC

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRunContext pins the host clock to a fixed zone so the resolver output
// does not depend on the machine running the tests.
func testRunContext(hostOffsetSeconds int64) RunContext {
	return RunContext{
		RunID:             uuid.New(),
		HostOffsetSeconds: hostOffsetSeconds,
		HostZone:          time.FixedZone("host", int(hostOffsetSeconds)),
		FilePrefix:        "2023_11_14_",
		StartedAt:         time.Unix(testBaseDt, 0),
	}
}

func testConfig(outputDir string) *appConfig {
	return &appConfig{
		outputDir:  outputDir,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     testLogger(),
	}
}

// makePayload builds a well-formed payload: 48 hourly samples an hour apart
// and 8 daily samples a day apart, all with non-precipitating conditions.
func makePayload(tzOffsetSeconds int64) ForecastPayload {
	payload := ForecastPayload{TimezoneOffset: tzOffsetSeconds}
	for i := 0; i < forecastHours; i++ {
		payload.Hourly = append(payload.Hourly, HourlySample{
			Dt:        testBaseDt + int64(i)*3600,
			Temp:      10 + float64(i%5),
			FeelsLike: 8 + float64(i%5),
			WindSpeed: 2.5,
			Weather:   []WeatherCondition{{ID: 800, Description: "clear sky"}},
		})
	}
	for i := 0; i < forecastDays; i++ {
		payload.Daily = append(payload.Daily, DailySample{
			Dt:        testBaseDt + int64(i)*86400,
			Sunrise:   testBaseDt + int64(i)*86400 + 7*3600,
			Sunset:    testBaseDt + int64(i)*86400 + 16*3600,
			Temp:      DailyTemps{Min: 4, Max: 13, Day: 11, Night: 5, Evening: 9, Morning: 6},
			FeelsLike: DailyFeelsLike{Day: 10, Night: 4, Evening: 8, Morning: 5},
			WindSpeed: 3.6,
			Weather:   []WeatherCondition{{ID: 802, Description: "scattered clouds"}},
		})
	}
	return payload
}

func testLocation() Location {
	return Location{Place: "Wroclaw", Latitude: 51.11, Longitude: 17.04, Language: "en"}
}

func mustWriteReports(t *testing.T, cfg *appConfig, run RunContext, loc Location, payload ForecastPayload) {
	t.Helper()
	if err := cfg.writeReports(run, loc, payload); err != nil {
		t.Fatalf("writeReports failed: %v", err)
	}
}
