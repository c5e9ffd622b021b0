package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for absent file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.FFprobeBinary() != "ffprobe" {
		t.Fatalf("unexpected probe binary %q", cfg.FFprobeBinary())
	}
	if cfg.Output.Extension != ".imp" {
		t.Fatalf("unexpected output extension %q", cfg.Output.Extension)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("journal should default to enabled")
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[paths]
input_dir = "~/music"
log_dir = "~/logs"

[probe]
extensions = ["WAV", ".Ogg", ""]

[output]
extension = "map"

[logging]
format = "JSON"
level = "Debug"
`)
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.InputDir != filepath.Join(home, "music") {
		t.Fatalf("input dir not expanded: %q", cfg.Paths.InputDir)
	}
	want := []string{".wav", ".ogg"}
	if len(cfg.Probe.Extensions) != len(want) {
		t.Fatalf("extensions = %v, want %v", cfg.Probe.Extensions, want)
	}
	for i := range want {
		if cfg.Probe.Extensions[i] != want[i] {
			t.Fatalf("extensions = %v, want %v", cfg.Probe.Extensions, want)
		}
	}
	if cfg.Output.Extension != ".map" {
		t.Fatalf("output extension = %q, want .map", cfg.Output.Extension)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestLoadRejectsExtensionCollision(t *testing.T) {
	path := writeConfig(t, `
[probe]
extensions = [".imp"]
`)
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "collides") {
		t.Fatalf("expected collision error, got %v", err)
	}
}

func TestJournalPathDefaultsUnderLogDir(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if got := cfg.JournalPath(); got != filepath.Join(cfg.Paths.LogDir, "journal.db") {
		t.Fatalf("journal path = %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Output.Extension != ".imp" {
		t.Fatalf("sample output extension = %q", cfg.Output.Extension)
	}
}
