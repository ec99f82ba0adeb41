package sched

import "errors"

// ErrConflict reports an overlap with an existing event outside the
// candidate's recurrence family.
var ErrConflict = errors.New("Time conflict detected with existing event.")

var errInvalidDuration = &InvalidEventError{msg: "Invalid event: duration must be at least 15 minutes."}

// InvalidEventError reports an event rejected at admission for reasons other
// than a time conflict: bad name, bad span, or a duplicate one-shot name.
type InvalidEventError struct {
	msg string
}

func (e *InvalidEventError) Error() string { return e.msg }

func invalidName(name string) *InvalidEventError {
	return &InvalidEventError{msg: "Invalid event name: " + name + ". Name must be unique and 1-50 characters."}
}

// NotFoundError reports a removal against a name with no matching event.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "Event '" + e.Name + "' not found."
}
