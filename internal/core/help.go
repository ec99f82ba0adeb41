package core

import (
	"fmt"
	"strings"
)

// printBanner writes the startup banner and the command summary.
func (a *App) printBanner() {
	fmt.Fprintln(a.out, "=== Event Management System ===")
	fmt.Fprintln(a.out, "Available commands:")
	fmt.Fprintln(a.out, "  signup <username> <password>")
	fmt.Fprintln(a.out, "  login <username> <password>")
	fmt.Fprintln(a.out, "  logout")
	fmt.Fprintln(a.out, "  add_event <name> <start_time> <end_time> [description]")
	fmt.Fprintln(a.out, "  add_periodic <name> <start_time> <end_time> <type> [description]")
	fmt.Fprintln(a.out, "  remove_event <name>")
	fmt.Fprintln(a.out, "  list_events")
	fmt.Fprintln(a.out, "  clear_events")
	fmt.Fprintln(a.out, "  add_task <title> [description] [priority] [deadline] [assignee]")
	fmt.Fprintln(a.out, "  update_task <id> <status>")
	fmt.Fprintln(a.out, "  remove_task <id>")
	fmt.Fprintln(a.out, "  list_tasks")
	fmt.Fprintln(a.out, "  clear_tasks")
	fmt.Fprintln(a.out, "  start_updates")
	fmt.Fprintln(a.out, "  stop_updates")
	fmt.Fprintln(a.out, "  help")
	fmt.Fprintln(a.out, "  exit")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
}

// printHelp writes the long-form help.
func (a *App) printHelp() {
	fmt.Fprintln(a.out, "\n=== Available Commands ===")
	fmt.Fprintln(a.out, "Authentication:")
	fmt.Fprintln(a.out, "  signup <username> <password>  - Create new account")
	fmt.Fprintln(a.out, "  login <username> <password>   - Login to account")
	fmt.Fprintln(a.out, "  logout                         - Logout from account")
	fmt.Fprintln(a.out, "\nEvent Management:")
	fmt.Fprintln(a.out, "  add_event <name> <HH:MM> <HH:MM> [desc] - Add one-time event")
	fmt.Fprintln(a.out, "  add_periodic <name> <HH:MM> <HH:MM> <type> [desc] - Add periodic event")
	fmt.Fprintln(a.out, "    Types: daily, weekly, monthly")
	fmt.Fprintln(a.out, "  remove_event <name>            - Remove event")
	fmt.Fprintln(a.out, "  list_events                    - List all events")
	fmt.Fprintln(a.out, "  clear_events                   - Remove all events")
	fmt.Fprintln(a.out, "\nTask Management:")
	fmt.Fprintln(a.out, "  add_task <title> [desc] [priority] [deadline] [assignee] - Add task")
	fmt.Fprintln(a.out, "    Priorities: low, medium, high, urgent")
	fmt.Fprintln(a.out, "  update_task <id> <status>      - Update task status")
	fmt.Fprintln(a.out, "    Status: pending, in_progress, completed, cancelled")
	fmt.Fprintln(a.out, "  remove_task <id>               - Remove task")
	fmt.Fprintln(a.out, "  list_tasks                     - List all tasks")
	fmt.Fprintln(a.out, "  clear_tasks                    - Remove all tasks")
	fmt.Fprintln(a.out, "\nSystem:")
	fmt.Fprintln(a.out, "  start_updates                  - Start periodic updates")
	fmt.Fprintln(a.out, "  stop_updates                   - Stop periodic updates")
	fmt.Fprintln(a.out, "  help                           - Show this help")
	fmt.Fprintln(a.out, "  exit                           - Exit program")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
}
