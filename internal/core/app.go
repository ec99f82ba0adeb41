// Package core wires the stores, the authentication gate, the background
// updater, and the interactive command loop into one application.
package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"dayplan/internal/auth"
	"dayplan/internal/bus"
	"dayplan/internal/config"
	"dayplan/internal/sched"
	"dayplan/internal/task"
	"dayplan/internal/updates"
	logx "dayplan/pkg/logx"
)

type App struct {
	cfgm *config.Manager
	logs *logx.Service
	log  logx.Logger

	bus bus.Bus
	upd *updates.Service

	// mu is the process-wide lock of the scheduling model: every read and
	// every mutation of the three stores happens under it, whether it
	// comes from the command loop or from the background updater.
	mu     sync.Mutex
	events *sched.Store
	tasks  *task.Store
	users  *auth.Registry

	in  io.Reader
	out io.Writer
}

func NewApp(cfgPath string) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}

	logSvc, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.ConsoleEnabled(),
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	log = log.With(logx.String("comp", "app"))
	cfgm.SetLogger(log.With(logx.String("comp", "config")))

	interval, err := parseDurationOrDefault("updates.interval", cfg.Updates.Interval, time.Hour)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfgm:   cfgm,
		logs:   logSvc,
		log:    log,
		bus:    bus.New(),
		events: sched.NewStore(),
		tasks:  task.NewStore(),
		users:  auth.NewRegistry(),
		in:     os.Stdin,
		out:    os.Stdout,
	}
	a.upd = updates.New(interval, a.periodicPass, log.With(logx.String("comp", "updates")))
	return a, nil
}

// Run prints the banner and serves the command loop until EOF, an empty
// line, or the exit verb. It always returns nil from a normal loop
// termination; command failures never propagate out.
func (a *App) Run(ctx context.Context) error {
	sup := NewSupervisor(ctx, a.log)
	sup.Go0("config-watch", func(ctx context.Context) { _ = a.cfgm.Watch(ctx) })
	sup.Go0("config-apply", a.applyConfigLoop)
	sup.Go0("alert-print", a.alertLoop)

	a.printBanner()

	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == "exit" {
			break
		}
		a.dispatch(line)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Thank you for using Event Management System!")

	// The worker observes its flag and exits on its own; shutdown never
	// blocks on it.
	a.stopUpdates()

	sup.Cancel()
	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = sup.Wait(waitCtx)

	_ = a.logs.Close()
	return nil
}

// periodicPass is one wake of the background updater: extend every
// recurrence family below the event cap, then alert on overdue tasks.
// Bus publication happens after the lock is released; no I/O under the lock.
func (a *App) periodicPass() {
	a.mu.Lock()
	added := a.events.Extend()
	count := a.events.Len()
	overdue := a.tasks.Overdue()
	a.mu.Unlock()

	if added > 0 {
		a.bus.Publish(bus.Event{
			Type: bus.TypeSeriesExtended,
			Data: bus.SeriesExtended{Added: added, EventCount: count},
		})
	}
	for _, t := range overdue {
		a.bus.Publish(bus.Event{
			Type: bus.TypeTaskOverdue,
			Data: bus.OverdueAlert{TaskID: t.ID, Title: t.Title},
		})
	}
}

// alertLoop prints updater output on the foreground writer.
func (a *App) alertLoop(ctx context.Context) {
	ch, unsub := a.bus.Subscribe(64)
	defer unsub()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			switch data := ev.Data.(type) {
			case bus.OverdueAlert:
				fmt.Fprintf(a.out, "ALERT: Task '%s' is overdue!\n", data.Title)
			case bus.SeriesExtended:
				a.log.Debug("recurrence families extended",
					logx.Int("added", data.Added),
					logx.Int("events", data.EventCount),
				)
			}
		}
	}
}

// applyConfigLoop reapplies logging settings when the config file changes.
// Updater cadence is fixed at startup; an interval change takes effect on
// the next process run.
func (a *App) applyConfigLoop(ctx context.Context) {
	ch := a.cfgm.Subscribe(4)
	defer a.cfgm.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-ch:
			if !ok {
				return
			}
			a.logs.Apply(logx.Config{
				Level:   cfg.Logging.Level,
				Console: cfg.Logging.ConsoleEnabled(),
				File: logx.FileConfig{
					Enabled: cfg.Logging.File.Enabled,
					Path:    cfg.Logging.File.Path,
				},
			})
			a.log.Info("logging config reapplied", logx.String("level", cfg.Logging.Level))
		}
	}
}

func parseDurationOrDefault(name, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", name, d)
	}
	return d, nil
}
