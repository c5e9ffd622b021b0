package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"imusemap/internal/config"
	"imusemap/internal/deps"
	"imusemap/internal/journal"
	"imusemap/internal/media/ffprobe"
	"imusemap/internal/media/params"
	"imusemap/internal/musicmap"
	"imusemap/internal/preflight"
	"imusemap/internal/scan"
	"imusemap/internal/segment"
)

// probeFunc matches ffprobe.Inspect; tests substitute a fake.
type probeFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Runner executes map-generation batches.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	journal *journal.Store
	probe   probeFunc
}

// New constructs a runner. The journal store may be nil to disable
// outcome recording.
func New(cfg *config.Config, logger *slog.Logger, store *journal.Store) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:     cfg,
		logger:  logger.With("component", "workflow"),
		journal: store,
		probe:   ffprobe.Inspect,
	}
}

// Options control one batch run.
type Options struct {
	// InputDir overrides the configured input directory when non-empty.
	InputDir string
	// Force regenerates maps even when they are newer than their input.
	Force bool
}

// FileResult captures the outcome for one input file.
type FileResult struct {
	Source  string
	Track   string
	MapPath string
	Status  journal.Status
	Err     error
	Plan    segment.Plan
	Params  params.Parameters
}

// Summary aggregates one batch run.
type Summary struct {
	RunID     string
	Generated int
	Skipped   int
	Failed    int
	Results   []FileResult
}

// Run processes every eligible file in the input directory, one at a time.
// Per-file failures are reported in the summary; the returned error is
// reserved for conditions that abort the whole batch.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	if missing, ok := deps.FirstMissing(preflight.CheckSystemDeps(r.cfg)); ok {
		return Summary{}, fmt.Errorf("%w: %s (%s)", ErrDependencyMissing, missing.Name, missing.Detail)
	}

	inputDir := opts.InputDir
	if inputDir == "" {
		inputDir = r.cfg.Paths.InputDir
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.LogDir, "imusemap.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return Summary{}, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	files, err := scan.Files(inputDir, r.cfg.Probe.Extensions)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("%w in %s", ErrNoInputFiles, inputDir)
	}

	summary := Summary{RunID: uuid.NewString()}
	r.logger.Info("starting batch", "run_id", summary.RunID, "dir", inputDir, "files", len(files))

	for _, file := range files {
		result := r.processFile(ctx, file, opts.Force)
		summary.Results = append(summary.Results, result)
		switch result.Status {
		case journal.StatusGenerated:
			summary.Generated++
		case journal.StatusSkipped:
			summary.Skipped++
		case journal.StatusFailed:
			summary.Failed++
		}
		r.record(ctx, summary.RunID, result)
	}

	r.logger.Info("batch finished",
		"run_id", summary.RunID,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, path string, force bool) FileResult {
	result := FileResult{
		Source: path,
		Track:  scan.TrackName(path),
	}
	result.MapPath = r.targetPath(path)

	if !force && upToDate(path, result.MapPath) {
		result.Status = journal.StatusSkipped
		r.logger.Debug("map up to date", "track", result.Track, "map", result.MapPath)
		return result
	}

	p, plan, err := r.EvaluateFile(ctx, path)
	if err != nil {
		result.Status = journal.StatusFailed
		result.Err = err
		var consistency *segment.ConsistencyError
		if errors.As(err, &consistency) {
			// Arithmetic defect, not bad input; make it loud.
			r.logger.Error("segment plan inconsistent", "track", result.Track, "error", err)
		} else {
			r.logger.Warn("skipping file", "track", result.Track, "file", path, "reason", err)
		}
		return result
	}
	result.Params = p
	result.Plan = plan

	doc := musicmap.Build(result.Track, plan).Render()
	if err := os.WriteFile(result.MapPath, []byte(doc), 0o644); err != nil {
		result.Status = journal.StatusFailed
		result.Err = fmt.Errorf("write map: %w", err)
		r.logger.Warn("skipping file", "track", result.Track, "file", path, "reason", result.Err)
		return result
	}

	result.Status = journal.StatusGenerated
	r.logger.Info("map written",
		"track", result.Track,
		"map", result.MapPath,
		"data_size", p.DataSizeBytes(),
		"intro", plan.Intro.Length,
		"loop", plan.Loop.Length,
		"outro", plan.Outro.Length,
	)
	return result
}

// EvaluateFile probes one file and computes its segment plan without
// writing anything. The inspect command uses this directly.
func (r *Runner) EvaluateFile(ctx context.Context, path string) (params.Parameters, segment.Plan, error) {
	probed, err := r.probe(ctx, r.cfg.FFprobeBinary(), path)
	if err != nil {
		return params.Parameters{}, segment.Plan{}, fmt.Errorf("%w: %w", ErrUnreadableAudio, err)
	}

	p, err := params.Resolve(probed)
	if err != nil {
		return params.Parameters{}, segment.Plan{}, err
	}

	plan, err := segment.Compute(p.DataSizeBytes(), p.BytesPerSecond(), scan.TrackName(path))
	if err != nil {
		return params.Parameters{}, segment.Plan{}, err
	}
	return p, plan, nil
}

func (r *Runner) targetPath(inputPath string) string {
	target := musicmap.TargetPath(inputPath, r.cfg.Output.Extension)
	if r.cfg.Paths.OutputDir == "" {
		return target
	}
	return filepath.Join(r.cfg.Paths.OutputDir, filepath.Base(target))
}

func (r *Runner) record(ctx context.Context, runID string, result FileResult) {
	if r.journal == nil {
		return
	}
	entry := journal.Entry{
		RunID:      runID,
		Track:      result.Track,
		SourcePath: result.Source,
		MapPath:    result.MapPath,
		Status:     result.Status,
		DataSize:   result.Params.DataSizeBytes(),
		IntroBytes: result.Plan.Intro.Length,
		LoopBytes:  result.Plan.Loop.Length,
		OutroBytes: result.Plan.Outro.Length,
	}
	if result.Err != nil {
		entry.Reason = result.Err.Error()
	}
	if err := r.journal.Record(ctx, entry); err != nil {
		r.logger.Warn("journal write failed", "track", result.Track, "error", err)
	}
}

// upToDate reports whether the map exists and is at least as new as the
// input file.
func upToDate(inputPath, mapPath string) bool {
	mapInfo, err := os.Stat(mapPath)
	if err != nil {
		return false
	}
	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		return false
	}
	return !mapInfo.ModTime().Before(inputInfo.ModTime())
}
