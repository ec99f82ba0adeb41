// Package sched implements the event-scheduling kernel: the event record,
// the no-overlap admission rule, and recurrence-family expansion.
package sched

import "dayplan/internal/daytime"

const (
	// MaxNameLength bounds event names.
	MaxNameLength = 50

	// MinDurationMinutes is the shortest admissible event span.
	MinDurationMinutes = 15

	// MaxEvents caps the store size. Non-overlapping events can never
	// reach it (1440 minutes / 15 minute minimum = 96 slots); only
	// recurrence families, which are exempt from mutual conflict, grow
	// past that, so the cap is enforced on every expansion append.
	MaxEvents = 100
)

// Kind classifies an event's recurrence behavior.
type Kind int

const (
	OneShot Kind = iota
	Daily
	Weekly
	Monthly
)

// String returns the display label used in listings and responses.
func (k Kind) String() string {
	switch k {
	case OneShot:
		return "One-time"
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// ParseKind maps a command token to a recurring kind. One-shot events are
// never named on the command line, so "one-shot" is not accepted here.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "daily":
		return Daily, true
	case "weekly":
		return Weekly, true
	case "monthly":
		return Monthly, true
	default:
		return OneShot, false
	}
}

// strideHours is the nominal recurrence stride. The expansion rotates hours
// modulo 24, so every stride collapses to the same minute of day; instances
// of a family all share the base interval.
func (k Kind) strideHours() int {
	switch k {
	case Daily:
		return 24
	case Weekly:
		return 24 * 7
	case Monthly:
		return 24 * 30
	default:
		return 0
	}
}

// Event is a named time-of-day interval, optionally part of a recurrence
// family. RecurrenceID 0 means the event belongs to no family.
type Event struct {
	Name         string
	Start        daytime.Time
	End          daytime.Time
	Description  string
	Kind         Kind
	RecurrenceID int
}

// DurationMinutes returns the event span in minutes.
func (e Event) DurationMinutes() int {
	return e.End.Minutes() - e.Start.Minutes()
}

// Recurring reports whether the event belongs to a recurrence family.
func (e Event) Recurring() bool {
	return e.Kind != OneShot && e.RecurrenceID != 0
}

// Validate checks the admission rules that do not depend on other events:
// name shape, positive span, minimum duration.
func (e Event) Validate() error {
	if e.Name == "" || len(e.Name) > MaxNameLength {
		return invalidName(e.Name)
	}
	if e.End.Minutes() <= e.Start.Minutes() || e.DurationMinutes() < MinDurationMinutes {
		return errInvalidDuration
	}
	return nil
}
