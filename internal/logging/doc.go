// Package logging constructs the slog loggers used across imusemap.
//
// Two handler formats are supported: a compact console handler
// (timestamp LEVEL component: message key=value) and standard JSON. The
// "auto" format picks console when stdout is a terminal and JSON
// otherwise. Output can fan out to stdout plus a log file under the
// configured log directory.
package logging
