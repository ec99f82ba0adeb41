package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	// No path at all.
	m := NewManager("")
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Logging.ConsoleEnabled() {
		t.Fatal("console not enabled by default")
	}
	if cfg.Updates.Interval != "" {
		t.Fatalf("Interval = %q, want empty", cfg.Updates.Interval)
	}

	// Missing file also commits defaults.
	m = NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := m.Load(); err != nil {
		t.Fatalf("Load of missing file error: %v", err)
	}
	if m.Get() == nil {
		t.Fatal("Get() nil after default load")
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", `
logging:
  level: debug
  console: false
  file:
    enabled: true
    path: /tmp/dayplan.log
updates:
  interval: 15m
`)

	cfg, err := NewManager(path).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.ConsoleEnabled() {
		t.Fatal("console should be explicitly disabled")
	}
	if !cfg.Logging.File.Enabled || cfg.Logging.File.Path != "/tmp/dayplan.log" {
		t.Fatalf("File = %+v", cfg.Logging.File)
	}
	if cfg.Updates.Interval != "15m" {
		t.Fatalf("Interval = %q, want 15m", cfg.Updates.Interval)
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.json", `{"updates":{"interval":"30s"}}`)

	cfg, err := NewManager(path).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Updates.Interval != "30s" {
		t.Fatalf("Interval = %q, want 30s", cfg.Updates.Interval)
	}
	// Omitted console stays at its default.
	if !cfg.Logging.ConsoleEnabled() {
		t.Fatal("console disabled without being set")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", `
logging:
  level: info
  verbosity: extreme
`)

	if _, err := NewManager(path).Parse(); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", "logging: [unclosed")

	if _, err := NewManager(path).Parse(); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestSubscribePublish(t *testing.T) {
	t.Parallel()
	m := NewManager("")
	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	cfg := Default()
	m.Commit(cfg)
	m.publish(cfg)

	select {
	case got := <-ch:
		if got != cfg {
			t.Fatal("subscriber received a different config")
		}
	default:
		t.Fatal("no config delivered")
	}
}

func TestPublishDropsStale(t *testing.T) {
	t.Parallel()
	m := NewManager("")
	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	first := Default()
	second := Default()
	m.publish(first)
	m.publish(second) // buffer full: stale item dropped, latest delivered

	select {
	case got := <-ch:
		if got != second {
			t.Fatal("stale config delivered instead of latest")
		}
	default:
		t.Fatal("no config delivered")
	}
}

func TestHashConfigStable(t *testing.T) {
	t.Parallel()
	a := &Config{Updates: UpdatesConfig{Interval: "5m"}}
	b := &Config{Updates: UpdatesConfig{Interval: "5m"}}
	c := &Config{Updates: UpdatesConfig{Interval: "10m"}}

	if hashConfig(a) != hashConfig(b) {
		t.Fatal("equal configs hash differently")
	}
	if hashConfig(a) == hashConfig(c) {
		t.Fatal("different configs hash equal")
	}
	if hashConfig(nil) != 0 {
		t.Fatal("nil config must hash to 0")
	}
}
