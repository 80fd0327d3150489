package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// wrapForecastURL builds the One Call request URL for a location. The
// exclude list drops the sections the reports never read.
func (cfg *appConfig) wrapForecastURL(location Location) string {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	params.Set("exclude", "current,minutely,alerts")
	params.Set("units", "metric")
	params.Set("lang", location.Language)
	params.Set("appid", cfg.owmKey)
	return fmt.Sprintf("%s?%s", cfg.owmURL, params.Encode())
}

// fetchForecast issues the single API call for a location. Any non-200
// status is a hard failure; there is no retry.
func (cfg *appConfig) fetchForecast(location Location) (ForecastPayload, error) {
	resp, err := cfg.httpClient.Get(cfg.wrapForecastURL(location))
	if err != nil {
		apiRequestsTotal.WithLabelValues("error").Inc()
		return ForecastPayload{}, fmt.Errorf("forecast request for %s failed: %w", location.Place, err)
	}
	defer resp.Body.Close()

	apiRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return ForecastPayload{}, fmt.Errorf("forecast request for %s failed: %s", location.Place, resp.Status)
	}

	payload, err := ParseForecastOWM(resp.Body, cfg.logger)
	if err != nil {
		return ForecastPayload{}, fmt.Errorf("forecast payload for %s: %w", location.Place, err)
	}
	return payload, nil
}
