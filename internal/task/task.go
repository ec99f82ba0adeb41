// Package task implements the prioritized work-item store.
package task

import "dayplan/internal/daytime"

// Status is the lifecycle state of a task.
type Status int

const (
	Pending Status = iota
	InProgress
	Completed
	Cancelled
)

// String returns the display label used in listings and responses.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "In Progress"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ParseStatus maps a command token to a Status.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "pending":
		return Pending, true
	case "in_progress":
		return InProgress, true
	case "completed":
		return Completed, true
	case "cancelled":
		return Cancelled, true
	default:
		return Pending, false
	}
}

// Priority orders tasks; higher values sort first in listings.
type Priority int

const (
	Low Priority = iota
	Medium
	High
	Urgent
)

// String returns the display label used in listings and responses.
func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Urgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// ParsePriority maps a command token to a Priority. Unknown tokens fall back
// to Medium; the dispatcher prints the warning line for them.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low":
		return Low, true
	case "medium":
		return Medium, true
	case "high":
		return High, true
	case "urgent":
		return Urgent, true
	default:
		return Medium, false
	}
}

// overdueReference is the frozen clock tasks are measured against. Tasks
// carry no date, so "overdue" means a deadline before noon.
var overdueReference = daytime.Time{Hour: 12, Minute: 0}

// Task is a work item with priority, status, optional deadline, and assignee.
// ID 0 means unassigned; the store allocates ids from 1 upward.
type Task struct {
	ID          int
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Deadline    daytime.Time
	Assignee    string
}

// Overdue reports whether the task's deadline has passed the frozen
// reference time. Completed and cancelled tasks are never overdue.
func (t Task) Overdue() bool {
	if t.Status == Completed || t.Status == Cancelled {
		return false
	}
	return t.Deadline.Minutes() < overdueReference.Minutes()
}
