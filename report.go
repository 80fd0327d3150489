package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Condition codes below 700 are the API's precipitating categories
// (thunderstorm, drizzle, rain, snow); 700 and above cover atmosphere, clear
// and clouds.
const precipCodeThreshold = 700

// summarizeHourly folds the rendered hourly window into the figures for the
// trailing summary line. Min/max start from the first sample and only move on
// strict comparison; sample order does not affect the result.
func summarizeHourly(samples []HourlySample) HourlySummary {
	summary := HourlySummary{
		MinTemp: samples[0].Temp,
		MaxTemp: samples[0].Temp,
	}
	for _, s := range samples {
		if s.Weather[0].ID < precipCodeThreshold {
			summary.Precipitation = true
		}
		if s.Temp < summary.MinTemp {
			summary.MinTemp = s.Temp
		}
		if s.Temp > summary.MaxTemp {
			summary.MaxTemp = s.Temp
		}
	}
	return summary
}

func reportHeader(place, frequency string, clk locationClock, now time.Time) string {
	return fmt.Sprintf("%s %s Forecast.  Generated at %s local time (UTC Offset: %s)\n\n",
		place, frequency, clk.generatedAtTime(now), clk.utcOffsetLiteral())
}

// renderHourlyReport produces the hourly document for one location: a
// heading, one timestamped block per hour of the horizon, and a summary line.
func renderHourlyReport(payload ForecastPayload, location Location, clk locationClock, now time.Time) string {
	var b strings.Builder
	b.WriteString(reportHeader(location.Place, "Hourly", clk, now))

	for i := 0; i < forecastHours; i++ {
		sample := payload.Hourly[i]
		b.WriteString(clk.sampleTime(sample.Dt).Format(sampleTimeLayout))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    Temperature %2d°C (feels like %2d°C), wind speed %3dkph, %s\n\n",
			roundWhole(sample.Temp),
			roundWhole(sample.FeelsLike),
			windSpeedKph(sample.WindSpeed),
			sample.Weather[0].Description,
		))
	}

	summary := summarizeHourly(payload.Hourly[:forecastHours])
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Summary: Minimum temperature: %d°C, maximum %d°C, ",
		roundWhole(summary.MinTemp), roundWhole(summary.MaxTemp)))
	if summary.Precipitation {
		b.WriteString("Rain (or snow) expected!\n")
	} else {
		b.WriteString("No rain expected!\n")
	}

	return b.String()
}

// renderDailyReport produces the daily document: a heading and one block per
// day with sunrise/sunset, prevailing conditions, wind, the max/min range and
// the four-way day/night/evening/morning breakdowns. No aggregate is kept
// across days.
func renderDailyReport(payload ForecastPayload, location Location, clk locationClock, now time.Time) string {
	var b strings.Builder
	b.WriteString(reportHeader(location.Place, "Daily", clk, now))

	for i := 0; i < forecastDays; i++ {
		sample := payload.Daily[i]
		b.WriteString(fmt.Sprintf("%s, Sunrise: %s, Sunset: %s\n",
			clk.sampleTime(sample.Dt).Format(sampleDateLayout),
			clk.sampleTime(sample.Sunrise).Format(clockLayout),
			clk.sampleTime(sample.Sunset).Format(clockLayout),
		))
		b.WriteString(fmt.Sprintf("    Prevailing conditions:    %s, wind speed: %dkph\n",
			sample.Weather[0].Description, windSpeedKph(sample.WindSpeed)))
		b.WriteString(fmt.Sprintf("    Temperatures:             Max %3d°C,    Min %3d°C\n",
			roundWhole(sample.Temp.Max), roundWhole(sample.Temp.Min)))
		b.WriteString(fmt.Sprintf("    day/night/evening/morning %3d°C,  %3d°C,  %3d°C,  %3d°C\n",
			roundWhole(sample.Temp.Day), roundWhole(sample.Temp.Night),
			roundWhole(sample.Temp.Evening), roundWhole(sample.Temp.Morning)))
		b.WriteString(fmt.Sprintf("    Feels like                %3d°C,  %3d°C,  %3d°C,  %3d°C\n",
			roundWhole(sample.FeelsLike.Day), roundWhole(sample.FeelsLike.Night),
			roundWhole(sample.FeelsLike.Evening), roundWhole(sample.FeelsLike.Morning)))
		b.WriteString("\n")
	}

	return b.String()
}

// reportFileName builds {YYYY}_{MM}_{DD}_{Place}_{Hourly|Daily}_Forecast.txt.
// The date prefix is fixed for the whole run; the place name is normalized so
// accented or spaced names stay filesystem-friendly.
func reportFileName(run RunContext, location Location, frequency string) (string, error) {
	place, err := normalizePlaceName(location.Place)
	if err != nil {
		return "", fmt.Errorf("could not normalize place name %q: %w", location.Place, err)
	}
	return fmt.Sprintf("%s%s_%s_Forecast.txt", run.FilePrefix, place, frequency), nil
}

// writeReports renders and writes both documents for one location. Files are
// written whole and overwrite any previous run's output for the same date.
func (cfg *appConfig) writeReports(run RunContext, location Location, payload ForecastPayload) error {
	clk := newLocationClock(payload.TimezoneOffset, run)
	now := time.Now().In(run.HostZone)

	documents := []struct {
		frequency string
		render    func(ForecastPayload, Location, locationClock, time.Time) string
	}{
		{"Hourly", renderHourlyReport},
		{"Daily", renderDailyReport},
	}

	for _, doc := range documents {
		name, err := reportFileName(run, location, doc.frequency)
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.outputDir, name)
		if err := os.WriteFile(path, []byte(doc.render(payload, location, clk, now)), 0o644); err != nil {
			return fmt.Errorf("could not write %s report for %s: %w", doc.frequency, location.Place, err)
		}
		reportsWrittenTotal.WithLabelValues(strings.ToLower(doc.frequency)).Inc()
		cfg.logger.Info("report written", "location", location.Place, "frequency", doc.frequency, "file", path)
	}

	return nil
}
