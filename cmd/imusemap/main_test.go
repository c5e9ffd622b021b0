package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imusemap/internal/workflow"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "music")
	logDir := filepath.Join(dir, "logs")
	for _, d := range []string{inputDir, logDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`
[paths]
input_dir = %q
log_dir = %q

[probe]
binary = "sh"

[logging]
format = "json"
`, inputDir, logDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()
	want := map[string]bool{
		"generate": false,
		"inspect":  false,
		"status":   false,
		"history":  false,
		"config":   false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %s not registered", name)
		}
	}
}

func TestConfigNewAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "new", path)
	if err != nil {
		t.Fatalf("config new: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	out, err = runCommand(t, "-c", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[paths]") || !strings.Contains(out, ".imp") {
		t.Fatalf("unexpected config show output:\n%s", out)
	}
}

func TestGenerateReportsNoInputFiles(t *testing.T) {
	path := writeTestConfig(t)

	_, err := runCommand(t, "-c", path, "generate")
	if !errors.Is(err, workflow.ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestHistoryWithEmptyJournal(t *testing.T) {
	path := writeTestConfig(t)

	out, err := runCommand(t, "-c", path, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Fatalf("unexpected history output: %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Track", "Bytes"},
		[][]string{{"AMBIENT1", "1234"}, {"SHORT"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "AMBIENT1") || !strings.Contains(out, "1234") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
	if !strings.Contains(out, "TRACK") {
		t.Fatalf("expected upper-cased header, got:\n%s", out)
	}
}
