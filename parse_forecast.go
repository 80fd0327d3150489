package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// The reports cover a fixed horizon: the most recent hour plus the following
// 47, and today plus the following 7 days.
const (
	forecastHours = 48
	forecastDays  = 8
)

// ParseForecastOWM decodes a One Call API response body and checks it is
// shaped well enough to render from. The renderer indexes a fixed horizon, so
// a short or gappy payload is rejected here rather than trusted downstream.
func ParseForecastOWM(body io.Reader, logger *slog.Logger) (ForecastPayload, error) {
	var payload ForecastPayload

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ForecastPayload{}, fmt.Errorf("could not decode forecast response: %w", err)
	}

	if err := validatePayload(payload); err != nil {
		return ForecastPayload{}, err
	}

	logger.Debug("forecast payload parsed",
		"hourly_samples", len(payload.Hourly),
		"daily_samples", len(payload.Daily),
		"timezone_offset", payload.TimezoneOffset,
	)
	return payload, nil
}

func validatePayload(payload ForecastPayload) error {
	if len(payload.Hourly) < forecastHours {
		return fmt.Errorf("short hourly series: got %d samples, need %d", len(payload.Hourly), forecastHours)
	}
	if len(payload.Daily) < forecastDays {
		return fmt.Errorf("short daily series: got %d samples, need %d", len(payload.Daily), forecastDays)
	}
	for i := 0; i < forecastHours; i++ {
		if len(payload.Hourly[i].Weather) == 0 {
			return fmt.Errorf("hourly sample %d has no weather condition", i)
		}
	}
	for i := 0; i < forecastDays; i++ {
		if len(payload.Daily[i].Weather) == 0 {
			return fmt.Errorf("daily sample %d has no weather condition", i)
		}
	}
	return nil
}
