package core

import (
	"fmt"
	"strconv"
	"strings"

	"dayplan/internal/auth"
	"dayplan/internal/sched"
	"dayplan/internal/task"
	logx "dayplan/pkg/logx"
)

// dispatch parses one input line and routes it. Unknown verbs produce no
// output. Argument-shape problems print a usage reminder and return; any
// error surfaced by the core prints through the catch-all line.
func (a *App) dispatch(line string) {
	verb, rest := nextToken(line)
	if verb == "" {
		return
	}

	var err error
	switch verb {
	case "help":
		a.printHelp()
	case "signup", "login":
		username, r := nextToken(rest)
		password, _ := nextToken(r)
		if username == "" || password == "" {
			fmt.Fprintln(a.out, "Error: Both username and password are required.")
			return
		}
		if verb == "signup" {
			err = a.signup(username, password)
		} else {
			err = a.login(username, password)
		}
	case "logout":
		err = a.logout()
	case "add_event":
		err = a.dispatchAddEvent(rest)
	case "add_periodic":
		err = a.dispatchAddPeriodic(rest)
	case "remove_event":
		name, _ := nextToken(rest)
		if name == "" {
			fmt.Fprintln(a.out, "Error: Event name is required.")
			return
		}
		err = a.removeEvent(name)
	case "list_events":
		err = a.listEvents()
	case "clear_events":
		err = a.clearEvents()
	case "add_task":
		err = a.dispatchAddTask(rest)
	case "update_task":
		err = a.dispatchUpdateTask(rest)
	case "remove_task":
		idText, _ := nextToken(rest)
		if idText == "" {
			fmt.Fprintln(a.out, "Error: Task ID is required.")
			return
		}
		id, convErr := strconv.Atoi(idText)
		if convErr != nil {
			fmt.Fprintln(a.out, "Error: Invalid task ID format.")
			return
		}
		err = a.removeTask(id)
	case "list_tasks":
		err = a.listTasks()
	case "clear_tasks":
		err = a.clearTasks()
	case "start_updates":
		a.startUpdates()
	case "stop_updates":
		a.stopUpdates()
	default:
		// Silently ignored.
	}

	if err != nil {
		a.log.Debug("command failed", logx.String("verb", verb), logx.Err(err))
		fmt.Fprintf(a.out, "Unexpected error processing command '%s': %s\n", verb, err)
	}
}

func (a *App) dispatchAddEvent(rest string) error {
	name, r := nextToken(rest)
	startText, r := nextToken(r)
	endText, r := nextToken(r)
	if name == "" || startText == "" || endText == "" {
		fmt.Fprintln(a.out, "Error: Event name, start time, and end time are required.")
		fmt.Fprintln(a.out, "Format: add_event <name> <HH:MM> <HH:MM> [description]")
		return nil
	}
	return a.addEvent(name, startText, endText, remainder(r), sched.OneShot)
}

func (a *App) dispatchAddPeriodic(rest string) error {
	name, r := nextToken(rest)
	startText, r := nextToken(r)
	endText, r := nextToken(r)
	kindText, r := nextToken(r)
	if name == "" || startText == "" || endText == "" || kindText == "" {
		fmt.Fprintln(a.out, "Error: Event name, start time, end time, and type are required.")
		fmt.Fprintln(a.out, "Format: add_periodic <name> <HH:MM> <HH:MM> <type> [description]")
		fmt.Fprintln(a.out, "Types: daily, weekly, monthly")
		return nil
	}
	kind, ok := sched.ParseKind(kindText)
	if !ok {
		fmt.Fprintln(a.out, "Error: Invalid event type. Use: daily, weekly, or monthly")
		return nil
	}
	return a.addEvent(name, startText, endText, remainder(r), kind)
}

func (a *App) dispatchAddTask(rest string) error {
	title, r := nextToken(rest)
	if title == "" {
		fmt.Fprintln(a.out, "Error: Task title is required.")
		fmt.Fprintln(a.out, "Format: add_task <title> [description] [priority] [deadline] [assignee]")
		return nil
	}

	// Positional trail: single-token description, priority, deadline;
	// the assignee is the line remainder.
	description, r := nextToken(r)
	priorityText, r := nextToken(r)
	deadlineText, r := nextToken(r)
	assignee := remainder(r)

	priority := task.Medium
	if priorityText != "" {
		var known bool
		priority, known = task.ParsePriority(priorityText)
		if !known {
			fmt.Fprintf(a.out, "Warning: Invalid priority '%s'. Using 'medium'.\n", priorityText)
		}
	}

	return a.addTask(title, description, priority, deadlineText, assignee)
}

func (a *App) dispatchUpdateTask(rest string) error {
	idText, r := nextToken(rest)
	statusText, _ := nextToken(r)
	if idText == "" || statusText == "" {
		fmt.Fprintln(a.out, "Error: Task ID and status are required.")
		fmt.Fprintln(a.out, "Format: update_task <id> <status>")
		fmt.Fprintln(a.out, "Status: pending, in_progress, completed, cancelled")
		return nil
	}

	id, err := strconv.Atoi(idText)
	if err != nil {
		fmt.Fprintln(a.out, "Error: Invalid task ID format.")
		return nil
	}

	status, ok := task.ParseStatus(statusText)
	if !ok {
		fmt.Fprintln(a.out, "Error: Invalid status. Use: pending, in_progress, completed, cancelled")
		return nil
	}

	return a.updateTask(id, status)
}

// ---- Gated operations ----
//
// Every method below takes the process-wide lock for its full duration, so
// the session check, the store scan, and the consequent mutation are one
// atomic step.

func (a *App) signup(username, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.users.Signup(username, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created successfully. You can now login.")
	return nil
}

func (a *App) login(username, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.users.Login(username, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Login successful. Welcome, %s!\n", username)
	return nil
}

func (a *App) logout() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	name, err := a.users.Logout()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged out successfully. Goodbye, %s!\n", name)
	return nil
}

func (a *App) addEvent(name, startText, endText, description string, kind sched.Kind) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "add events"}
	}

	ev, err := a.events.Add(name, startText, endText, description, kind)
	if err != nil {
		return err
	}

	if kind == sched.OneShot {
		fmt.Fprintf(a.out, "Event '%s' added successfully from %s to %s.\n", ev.Name, ev.Start, ev.End)
	} else {
		fmt.Fprintf(a.out, "Periodic event '%s' (%s) added successfully.\n", ev.Name, kind)
	}
	return nil
}

func (a *App) removeEvent(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "remove events"}
	}

	series, err := a.events.Remove(name)
	if err != nil {
		return err
	}
	if series {
		fmt.Fprintln(a.out, "Periodic event series removed successfully.")
	} else {
		fmt.Fprintf(a.out, "Event '%s' removed successfully.\n", name)
	}
	return nil
}

func (a *App) listEvents() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "view events"}
	}

	events := a.events.List()
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events scheduled.")
		return nil
	}

	fmt.Fprintf(a.out, "Scheduled Events (%d total):\n", len(events))
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	for i, ev := range events {
		fmt.Fprintf(a.out, "%d. %s", i+1, ev.Name)
		if ev.Kind != sched.OneShot {
			fmt.Fprintf(a.out, " [%s]", ev.Kind)
		}
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "   Time: %s - %s (%d minutes)\n", ev.Start, ev.End, ev.DurationMinutes())
		if ev.Description != "" {
			fmt.Fprintf(a.out, "   Description: %s\n", ev.Description)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) clearEvents() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "clear events"}
	}

	a.events.Clear()
	fmt.Fprintln(a.out, "All events cleared.")
	return nil
}

func (a *App) addTask(title, description string, priority task.Priority, deadlineText, assignee string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "add tasks"}
	}

	t, err := a.tasks.Add(title, description, priority, deadlineText, assignee, a.actor())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task '%s' added successfully (ID: %d, Priority: %s).\n", t.Title, t.ID, t.Priority)
	return nil
}

func (a *App) updateTask(id int, status task.Status) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "update tasks"}
	}

	t, err := a.tasks.UpdateStatus(id, status, a.actor())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task '%s' status updated to %s.\n", t.Title, t.Status)
	return nil
}

func (a *App) removeTask(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "remove tasks"}
	}

	t, err := a.tasks.Remove(id, a.actor())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task '%s' removed successfully.\n", t.Title)
	return nil
}

func (a *App) listTasks() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "view tasks"}
	}

	tasks := a.tasks.List()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks available.")
		return nil
	}

	fmt.Fprintf(a.out, "Tasks (%d total):\n", len(tasks))
	fmt.Fprintln(a.out, strings.Repeat("=", 80))
	for _, t := range tasks {
		fmt.Fprintf(a.out, "ID: %d | %s\n", t.ID, t.Title)
		fmt.Fprintf(a.out, "   Status: %s | Priority: %s\n", t.Status, t.Priority)
		fmt.Fprintf(a.out, "   Assigned to: %s\n", t.Assignee)
		if t.Deadline.Minutes() > 0 {
			fmt.Fprintf(a.out, "   Deadline: %s", t.Deadline)
			if t.Overdue() {
				fmt.Fprint(a.out, " (OVERDUE)")
			}
			fmt.Fprintln(a.out)
		}
		if t.Description != "" {
			fmt.Fprintf(a.out, "   Description: %s\n", t.Description)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) clearTasks() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.users.LoggedIn() {
		return &auth.UnauthorizedError{Action: "clear tasks"}
	}

	a.tasks.Clear()
	fmt.Fprintln(a.out, "All tasks cleared.")
	return nil
}

func (a *App) startUpdates() {
	if a.upd.Start() {
		fmt.Fprintln(a.out, "Periodic updates started.")
	} else {
		fmt.Fprintln(a.out, "Periodic updates already running.")
	}
}

func (a *App) stopUpdates() {
	a.upd.Stop()
	fmt.Fprintln(a.out, "Periodic updates stopped.")
}

// actor snapshots the session user for task permission checks. Callers hold
// the process-wide lock.
func (a *App) actor() task.Actor {
	u, ok := a.users.Current()
	if !ok {
		return task.Actor{}
	}
	return task.Actor{Username: u.Username, Admin: a.users.CurrentIsAdmin()}
}

// ---- Line splitting ----

// nextToken consumes leading blanks and returns the next
// whitespace-delimited token plus the unconsumed tail.
func nextToken(s string) (token, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	j := i
	for j < len(s) && s[j] != ' ' && s[j] != '\t' {
		j++
	}
	return s[i:j], s[j:]
}

// remainder returns the tail of the line with leading blanks stripped.
// Free-form fields (description, assignee) keep their internal spacing.
func remainder(s string) string {
	return strings.TrimLeft(s, " \t")
}
