package main

import (
	"fmt"
	"math"
	"time"
)

// This file holds the time arithmetic that reconciles the three clocks in
// play: the API's UTC Unix timestamps, the reported location's UTC offset,
// and the host system's own local clock (which carries its own UTC offset,
// including any daylight-saving shift in effect at run time).

const (
	sampleTimeLayout = "Mon _2 January 2006, 15:04"
	sampleDateLayout = "Mon _2 January 2006"
	clockLayout      = "15:04"
)

// locationClock converts forecast timestamps for one location. It pairs the
// location's UTC offset from the API payload with the host offset resolved
// once per run.
type locationClock struct {
	tzOffsetSeconds   int64
	hostOffsetSeconds int64
	hostZone          *time.Location
}

func newLocationClock(tzOffsetSeconds int64, run RunContext) locationClock {
	return locationClock{
		tzOffsetSeconds:   tzOffsetSeconds,
		hostOffsetSeconds: run.HostOffsetSeconds,
		hostZone:          run.HostZone,
	}
}

// sampleTime converts a UTC Unix timestamp from the payload into the
// location's wall-clock time. The host offset is subtracted up front because
// interpreting the epoch value in the host zone re-applies exactly that
// shift; after cancellation only the location offset remains.
func (c locationClock) sampleTime(utcSeconds int64) time.Time {
	adjusted := utcSeconds + c.tzOffsetSeconds - c.hostOffsetSeconds
	return time.Unix(adjusted, 0).In(c.hostZone)
}

// generatedAtTime projects a host-local clock reading into the location's
// current local time, for the "Generated at HH:MM" report heading. Unlike
// sampleTime this applies a fractional-hour delta to a live clock reading
// rather than recomputing from an epoch value; the two paths are kept
// separate on purpose because they can disagree near day boundaries.
func (c locationClock) generatedAtTime(now time.Time) string {
	deltaHours := float64(c.tzOffsetSeconds-c.hostOffsetSeconds) / 3600
	return now.Add(time.Duration(deltaHours * float64(time.Hour))).Format(clockLayout)
}

// utcOffsetLiteral renders the location's offset for report headings, e.g.
// "1 hour", "-5 hours", "0 hours". Singular only at exactly one hour either
// side of UTC.
func (c locationClock) utcOffsetLiteral() string {
	hours := int(math.Round(float64(c.tzOffsetSeconds) / 3600))
	word := "hours"
	if c.tzOffsetSeconds == 3600 || c.tzOffsetSeconds == -3600 {
		word = "hour"
	}
	return fmt.Sprintf("%d %s", hours, word)
}

// hostUTCOffset resolves the host's UTC offset in seconds for the given
// moment. base is the host's standard-time offset; one hour is added while
// daylight saving is in effect, so runs either side of a DST switch use
// different values.
func hostUTCOffset(base int64, now time.Time) int64 {
	if now.IsDST() {
		return base + 3600
	}
	return base
}

// roundWhole rounds half away from zero, the convention used for every
// temperature and wind figure in the reports.
func roundWhole(v float64) int {
	return int(math.Round(v))
}

// windSpeedKph converts the API's metres-per-second wind speed to whole
// kilometres per hour.
func windSpeedKph(mps float64) int {
	return roundWhole(mps / 1000 * 3600)
}
