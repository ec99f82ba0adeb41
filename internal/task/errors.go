package task

import (
	"errors"
	"strconv"
)

// ErrEmptyTitle rejects tasks admitted without a title.
var ErrEmptyTitle = errors.New("Task title cannot be empty.")

// ForbiddenError reports a mutation attempted by a user who neither owns the
// task nor holds the admin task permission.
type ForbiddenError struct {
	Action string // "update" or "remove"
}

func (e *ForbiddenError) Error() string {
	return "You don't have permission to " + e.Action + " this task."
}

// NotFoundError reports an operation against an id with no matching task.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return "Task with ID " + strconv.Itoa(e.ID) + " not found."
}
