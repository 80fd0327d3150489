package main

import (
	"time"

	"github.com/google/uuid"
)

// Location is one entry from the locations file. Place is used verbatim in
// report headings; file names use a normalized form of it.
type Location struct {
	Place     string  `json:"Place" validate:"required"`
	Latitude  float64 `json:"Latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"Longitude" validate:"gte=-180,lte=180"`
	Language  string  `json:"Language" validate:"required"`
}

// ForecastPayload is the decoded One Call response for a single location.
// TimezoneOffset is the number of seconds to add to a UTC timestamp to get
// that location's wall-clock time.
type ForecastPayload struct {
	TimezoneOffset int64          `json:"timezone_offset"`
	Hourly         []HourlySample `json:"hourly"`
	Daily          []DailySample  `json:"daily"`
}

type HourlySample struct {
	Dt        int64              `json:"dt"`
	Temp      float64            `json:"temp"`
	FeelsLike float64            `json:"feels_like"`
	WindSpeed float64            `json:"wind_speed"`
	Weather   []WeatherCondition `json:"weather"`
}

type DailySample struct {
	Dt        int64              `json:"dt"`
	Sunrise   int64              `json:"sunrise"`
	Sunset    int64              `json:"sunset"`
	Temp      DailyTemps         `json:"temp"`
	FeelsLike DailyFeelsLike     `json:"feels_like"`
	WindSpeed float64            `json:"wind_speed"`
	Weather   []WeatherCondition `json:"weather"`
}

type DailyTemps struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Day     float64 `json:"day"`
	Night   float64 `json:"night"`
	Evening float64 `json:"eve"`
	Morning float64 `json:"morn"`
}

type DailyFeelsLike struct {
	Day     float64 `json:"day"`
	Night   float64 `json:"night"`
	Evening float64 `json:"eve"`
	Morning float64 `json:"morn"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// HourlySummary accumulates while the hourly report is rendered and feeds the
// trailing summary line. Min/Max are seeded from the first sample;
// Precipitation flips to true when any sample's condition code is below 700.
type HourlySummary struct {
	MinTemp       float64
	MaxTemp       float64
	Precipitation bool
}

// RunContext is the run-scoped immutable state derived once at startup,
// before any per-location work begins.
type RunContext struct {
	RunID             uuid.UUID
	HostOffsetSeconds int64
	HostZone          *time.Location
	FilePrefix        string
	StartedAt         time.Time
}
