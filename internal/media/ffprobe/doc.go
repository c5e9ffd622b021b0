// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no imusemap-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties (codec, rate, depth, duration)
//   - Format: container-level metadata (duration, size)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
//
// Helper methods on Result provide convenient access to the first audio
// stream and numeric parsing of ffprobe's string-typed fields.
package ffprobe
