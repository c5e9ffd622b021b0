package params

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"imusemap/internal/media/ffprobe"
)

// Defaults applied when the probe omits a field.
const (
	DefaultSampleRate = 22050
	DefaultBitDepth   = 16
	DefaultChannels   = 2
)

// ErrMissingDuration indicates the probe reported no usable duration.
var ErrMissingDuration = errors.New("missing duration")

// ErrNoAudioStream indicates the container holds no audio stream.
var ErrNoAudioStream = errors.New("no audio stream")

// Parameters is the normalized description of one track's raw audio.
type Parameters struct {
	SampleRate      int64
	BitsPerSample   int
	Channels        int
	DurationSamples int64
	DurationSeconds float64
}

// BytesPerSecond returns the raw data rate of the track.
func (p Parameters) BytesPerSecond() int64 {
	return p.SampleRate * int64(p.BitsPerSample) / 8 * int64(p.Channels)
}

// DataSizeBytes returns the total raw audio payload size.
func (p Parameters) DataSizeBytes() int64 {
	return p.DurationSamples * int64(p.BitsPerSample) / 8 * int64(p.Channels)
}

// Resolve normalizes a probe result into Parameters.
func Resolve(result ffprobe.Result) (Parameters, error) {
	stream, ok := result.FirstAudioStream()
	if !ok {
		return Parameters{}, ErrNoAudioStream
	}

	p := Parameters{
		SampleRate:    stream.SampleRateHz(),
		BitsPerSample: stream.BitDepth(),
		Channels:      stream.Channels,
	}
	if p.SampleRate <= 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.BitsPerSample <= 0 {
		p.BitsPerSample = DefaultBitDepth
	}
	if p.Channels <= 0 {
		p.Channels = DefaultChannels
	}

	samples, seconds, err := resolveDuration(stream, result, p.SampleRate)
	if err != nil {
		return Parameters{}, err
	}
	p.DurationSamples = samples
	p.DurationSeconds = seconds
	return p, nil
}

// resolveDuration prefers the stream tick count when its time base is one
// tick per sample (the case for PCM containers); otherwise it derives the
// sample count from a seconds field, truncating toward zero.
func resolveDuration(stream ffprobe.Stream, result ffprobe.Result, rate int64) (int64, float64, error) {
	if stream.DurationTS > 0 && stream.TimeBase == fmt.Sprintf("1/%d", rate) {
		samples := stream.DurationTS
		seconds := stream.DurationSecondsValue()
		if seconds == 0 || math.IsNaN(seconds) {
			seconds = float64(samples) / float64(rate)
		}
		return samples, seconds, nil
	}

	raw := strings.TrimSpace(stream.Duration)
	seconds := stream.DurationSecondsValue()
	if raw == "" {
		raw = strings.TrimSpace(result.Format.Duration)
		seconds = result.DurationSeconds()
	}
	if raw == "" || math.IsNaN(seconds) || seconds < 0 {
		return 0, 0, ErrMissingDuration
	}
	return int64(seconds * float64(rate)), seconds, nil
}
