package journal

import "time"

// Status classifies the outcome for one input file.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Entry records the outcome for one input file within a run.
type Entry struct {
	ID         int64
	RunID      string
	Track      string
	SourcePath string
	MapPath    string
	Status     Status
	Reason     string
	DataSize   int64
	IntroBytes int64
	LoopBytes  int64
	OutroBytes int64
	CreatedAt  time.Time
}

// RunSummary aggregates the entries of one run.
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the number of files the run touched.
func (r RunSummary) Total() int {
	return r.Generated + r.Skipped + r.Failed
}
