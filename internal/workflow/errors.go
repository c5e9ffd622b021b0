package workflow

import "errors"

var (
	// ErrDependencyMissing aborts the run before any file is touched.
	ErrDependencyMissing = errors.New("required dependency missing")

	// ErrNoInputFiles is returned when the scan finds nothing eligible.
	ErrNoInputFiles = errors.New("no input files found")

	// ErrLocked is returned when another batch holds the run lock.
	ErrLocked = errors.New("another run is in progress")

	// ErrUnreadableAudio marks per-file probe failures; the file is
	// skipped and the batch continues.
	ErrUnreadableAudio = errors.New("unreadable audio")
)
