// Package daytime implements the minute-of-day time value used across the
// scheduler. There is no date component: the whole system reasons in minutes
// of a single 24-hour day.
package daytime

import (
	"fmt"
	"regexp"
)

// timeFormat accepts H:MM or HH:MM, 00:00 through 23:59.
var timeFormat = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Time is an (hour, minute) pair. The zero value is 00:00.
type Time struct {
	Hour   int
	Minute int
}

// ParseError reports time text that does not parse as HH:MM.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return e.Reason + ": " + e.Input
	}
	return "Invalid time format: " + e.Input + ". Use HH:MM format."
}

// Parse converts HH:MM text into a Time.
//
// The regexp gates the shape; the numeric ranges are re-checked afterwards so
// a future regexp change cannot silently admit out-of-range values.
func Parse(s string) (Time, error) {
	if !timeFormat.MatchString(s) {
		return Time{}, &ParseError{Input: s}
	}

	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Time{}, &ParseError{Input: s, Reason: "Failed to parse time"}
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Time{}, &ParseError{Input: s, Reason: "Time values out of range"}
	}

	return Time{Hour: h, Minute: m}, nil
}

// Minutes returns the canonical scalar form, 60*h + m in [0, 1440).
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the canonical zero-padded HH:MM form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before orders times by minute value.
func (t Time) Before(other Time) bool {
	return t.Minutes() < other.Minutes()
}

// Equal reports field-wise equality.
func (t Time) Equal(other Time) bool {
	return t.Hour == other.Hour && t.Minute == other.Minute
}
