package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imusemap/internal/config"
	"imusemap/internal/journal"
	"imusemap/internal/media/ffprobe"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.InputDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	// Any binary that exists; the fake probe never executes it.
	cfg.Probe.Binary = "sh"
	return &cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pcmStream(seconds int64) ffprobe.Stream {
	return ffprobe.Stream{
		CodecType:     "audio",
		SampleRate:    "44100",
		Channels:      2,
		BitsPerSample: 16,
		DurationTS:    seconds * 44100,
		TimeBase:      "1/44100",
		Duration:      fmt.Sprintf("%d.000000", seconds),
	}
}

// fakeProbe serves canned results keyed by basename.
func fakeProbe(results map[string]ffprobe.Result, errs map[string]error) probeFunc {
	return func(_ context.Context, _ string, path string) (ffprobe.Result, error) {
		name := filepath.Base(path)
		if err, ok := errs[name]; ok {
			return ffprobe.Result{}, err
		}
		if result, ok := results[name]; ok {
			return result, nil
		}
		return ffprobe.Result{}, fmt.Errorf("unexpected probe of %s", name)
	}
}

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGeneratesMaps(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg.Paths.InputDir, "AMBIENT1.WAV")
	writeInput(t, cfg.Paths.InputDir, "frconcourse.wav")

	store, err := journal.Open(cfg.JournalPath())
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer store.Close()

	runner := New(cfg, discardLogger(), store)
	runner.probe = fakeProbe(map[string]ffprobe.Result{
		"AMBIENT1.WAV":    {Streams: []ffprobe.Stream{pcmStream(100)}},
		"frconcourse.wav": {Streams: []ffprobe.Stream{pcmStream(60)}},
	}, nil)

	summary, err := runner.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Generated != 2 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	doc, err := os.ReadFile(filepath.Join(cfg.Paths.InputDir, "AMBIENT1.imp"))
	if err != nil {
		t.Fatalf("read map: %v", err)
	}
	if !strings.HasPrefix(string(doc), "[iMUSE Map]\nVersion = 1\n") {
		t.Fatalf("unexpected map header: %q", string(doc)[:40])
	}
	if !strings.Contains(string(doc), "Loop = 500") {
		t.Fatal("jump directive missing loop count")
	}

	// The concourse track gets the larger intro allowance.
	conc, err := os.ReadFile(filepath.Join(cfg.Paths.InputDir, "frconcourse.imp"))
	if err != nil {
		t.Fatalf("read concourse map: %v", err)
	}
	wantIntro := int64(176400*6 + 56448)
	if !strings.Contains(string(conc), fmt.Sprintf("Length = %d", wantIntro)) {
		t.Fatalf("concourse intro length %d missing from map:\n%s", wantIntro, conc)
	}

	entries, err := store.EntriesForRun(context.Background(), summary.RunID)
	if err != nil {
		t.Fatalf("journal entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Status != journal.StatusGenerated {
			t.Fatalf("unexpected entry status: %+v", entry)
		}
	}
}

func TestRunSkipsUpToDateMaps(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg.Paths.InputDir, "AMBIENT1.WAV")

	runner := New(cfg, discardLogger(), nil)
	runner.probe = fakeProbe(map[string]ffprobe.Result{
		"AMBIENT1.WAV": {Streams: []ffprobe.Stream{pcmStream(100)}},
	}, nil)

	if _, err := runner.Run(context.Background(), Options{}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	summary, err := runner.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary.Skipped != 1 || summary.Generated != 0 {
		t.Fatalf("expected skip on second run, got %+v", summary)
	}

	summary, err = runner.Run(context.Background(), Options{Force: true})
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if summary.Generated != 1 {
		t.Fatalf("expected regeneration under force, got %+v", summary)
	}
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg.Paths.InputDir, "BAD.WAV")
	writeInput(t, cfg.Paths.InputDir, "GOOD.WAV")
	writeInput(t, cfg.Paths.InputDir, "NODUR.WAV")

	runner := New(cfg, discardLogger(), nil)
	runner.probe = fakeProbe(map[string]ffprobe.Result{
		"GOOD.WAV": {Streams: []ffprobe.Stream{pcmStream(100)}},
		"NODUR.WAV": {Streams: []ffprobe.Stream{{
			CodecType: "audio", SampleRate: "44100", Channels: 2, BitsPerSample: 16,
		}}},
	}, map[string]error{
		"BAD.WAV": errors.New("not an audio container"),
	})

	summary, err := runner.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Generated != 1 || summary.Failed != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.InputDir, "GOOD.imp")); err != nil {
		t.Fatalf("good map missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.InputDir, "BAD.imp")); !os.IsNotExist(err) {
		t.Fatal("map written for unreadable input")
	}

	for _, result := range summary.Results {
		if result.Track == "BAD" && !errors.Is(result.Err, ErrUnreadableAudio) {
			t.Fatalf("expected ErrUnreadableAudio for BAD, got %v", result.Err)
		}
	}
}

func TestRunNoInputFiles(t *testing.T) {
	cfg := testConfig(t)
	runner := New(cfg, discardLogger(), nil)

	_, err := runner.Run(context.Background(), Options{})
	if !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestRunDependencyMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Probe.Binary = "definitely-not-installed-probe"
	writeInput(t, cfg.Paths.InputDir, "AMBIENT1.WAV")

	runner := New(cfg, discardLogger(), nil)
	_, err := runner.Run(context.Background(), Options{})
	if !errors.Is(err, ErrDependencyMissing) {
		t.Fatalf("expected ErrDependencyMissing, got %v", err)
	}
}

func TestRunWritesToOutputDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.OutputDir = t.TempDir()
	writeInput(t, cfg.Paths.InputDir, "AMBIENT1.WAV")

	runner := New(cfg, discardLogger(), nil)
	runner.probe = fakeProbe(map[string]ffprobe.Result{
		"AMBIENT1.WAV": {Streams: []ffprobe.Stream{pcmStream(100)}},
	}, nil)

	if _, err := runner.Run(context.Background(), Options{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "AMBIENT1.imp")); err != nil {
		t.Fatalf("map not in output dir: %v", err)
	}
}

func TestEvaluateFile(t *testing.T) {
	cfg := testConfig(t)
	runner := New(cfg, discardLogger(), nil)
	runner.probe = fakeProbe(map[string]ffprobe.Result{
		"AMBIENT1.WAV": {Streams: []ffprobe.Stream{pcmStream(100)}},
	}, nil)

	p, plan, err := runner.EvaluateFile(context.Background(), "AMBIENT1.WAV")
	if err != nil {
		t.Fatalf("EvaluateFile returned error: %v", err)
	}
	if p.BytesPerSecond() != 176_400 {
		t.Fatalf("bytes/sec = %d", p.BytesPerSecond())
	}
	if plan.Stop() != p.DataSizeBytes() {
		t.Fatalf("plan stop %d != data size %d", plan.Stop(), p.DataSizeBytes())
	}
}
