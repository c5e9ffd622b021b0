// Package params normalizes raw probe output into the audio parameters the
// segment calculator consumes.
//
// Sample rate, bit depth, and channel count fall back to the legacy engine
// defaults (22050 Hz, 16-bit, stereo) when the probe omits them. Duration
// is required: a track with no resolvable duration is skipped. A duration
// of zero is valid and yields a zero data size.
package params
