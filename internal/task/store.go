package task

import (
	"sort"

	"dayplan/internal/daytime"
)

// Actor identifies the session user performing a task mutation.
type Actor struct {
	Username string
	Admin    bool // holds the "admin" task permission
}

func (a Actor) may(t Task) bool {
	return t.Assignee == a.Username || a.Admin
}

// Store holds the task set. Ids are allocated from a monotonic counter and
// never reused within a process lifetime.
//
// Like the event store, it does no locking of its own; the owning App
// serializes every call through the process-wide lock.
type Store struct {
	tasks  []Task
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Len returns the current task count.
func (s *Store) Len() int { return len(s.tasks) }

// Add admits a new task. deadlineText may be empty for no deadline. An empty
// assignee defaults to the actor's username.
func (s *Store) Add(title, description string, priority Priority, deadlineText, assignee string, actor Actor) (Task, error) {
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	var deadline daytime.Time
	if deadlineText != "" {
		var err error
		deadline, err = daytime.Parse(deadlineText)
		if err != nil {
			return Task{}, err
		}
	}

	if assignee == "" {
		assignee = actor.Username
	}

	t := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Status:      Pending,
		Priority:    priority,
		Deadline:    deadline,
		Assignee:    assignee,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// UpdateStatus sets the status of the task with the given id. The actor must
// be the assignee or hold the admin permission.
func (s *Store) UpdateStatus(id int, status Status, actor Actor) (Task, error) {
	idx := s.find(id)
	if idx < 0 {
		return Task{}, &NotFoundError{ID: id}
	}
	if !actor.may(s.tasks[idx]) {
		return Task{}, &ForbiddenError{Action: "update"}
	}
	s.tasks[idx].Status = status
	return s.tasks[idx], nil
}

// Remove deletes the task with the given id under the same permission rule
// as UpdateStatus. It returns the removed task.
func (s *Store) Remove(id int, actor Actor) (Task, error) {
	idx := s.find(id)
	if idx < 0 {
		return Task{}, &NotFoundError{ID: id}
	}
	if !actor.may(s.tasks[idx]) {
		return Task{}, &ForbiddenError{Action: "remove"}
	}
	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return removed, nil
}

// List returns a copy of the task set ordered by priority descending
// (urgent first), then deadline ascending. Ties keep insertion order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Deadline.Minutes() < out[j].Deadline.Minutes()
	})
	return out
}

// Clear empties the task set. The id counter keeps running.
func (s *Store) Clear() {
	s.tasks = nil
}

// Overdue returns the tasks currently past the reference clock, in insertion
// order. Used by the background updater.
func (s *Store) Overdue() []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.Overdue() && t.Status != Completed {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) find(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
