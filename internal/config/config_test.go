package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chatnav.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
debugger_url: http://127.0.0.1:9222
app_title: Discord
cache_ttl_seconds: 1.5
walk_max_depth: 12
walk_timeout_seconds: 4
patterns:
  servers:
    - custom sidebar
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		DebuggerURL:        "http://127.0.0.1:9222",
		AppTitle:           "Discord",
		CacheTTLSeconds:    1.5,
		WalkMaxDepth:       12,
		WalkTimeoutSeconds: 4,
	}
	want.Patterns.Servers = []string{"custom sidebar"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if got := cfg.CacheTTL(); got != 1500*time.Millisecond {
		t.Errorf("CacheTTL = %v, want 1.5s", got)
	}
	if got := cfg.WalkTimeout(); got != 4*time.Second {
		t.Errorf("WalkTimeout = %v, want 4s", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.DebuggerURL != "" || cfg.CacheTTLSeconds != 0 {
		t.Errorf("missing file should yield the zero config: %+v", cfg)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "patterns: [not: a: map")
	if _, err := Load(path); err == nil {
		t.Error("malformed config did not error")
	}
}

func TestZeroConfigDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.CacheTTL() != 0 {
		t.Errorf("zero config CacheTTL = %v, want 0 (engine default)", cfg.CacheTTL())
	}
	if cfg.WalkTimeout() != 0 {
		t.Errorf("zero config WalkTimeout = %v, want 0 (walker default)", cfg.WalkTimeout())
	}
}
