package ffprobe

import (
	"encoding/json"
	"math"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio", SampleRate: "44100", Channels: 2, BitsPerSample: 16, DurationTS: 441000},
			{CodecType: "audio"},
		},
		Format: Format{
			Duration: "123.45",
		},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	stream, ok := result.FirstAudioStream()
	if !ok {
		t.Fatal("expected an audio stream")
	}
	if stream.SampleRateHz() != 44100 {
		t.Fatalf("unexpected sample rate: %d", stream.SampleRateHz())
	}
	if stream.DurationTS != 441000 {
		t.Fatalf("unexpected duration_ts: %d", stream.DurationTS)
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "audio", SampleRate: "fast"}},
		Format:  Format{Duration: "bad"},
	}
	if !math.IsNaN(result.DurationSeconds()) {
		t.Fatalf("expected duration NaN, got %v", result.DurationSeconds())
	}
	stream, _ := result.FirstAudioStream()
	if stream.SampleRateHz() != 0 {
		t.Fatalf("expected sample rate 0, got %d", stream.SampleRateHz())
	}
}

func TestStreamBitDepth(t *testing.T) {
	if got := (Stream{BitsPerSample: 16}).BitDepth(); got != 16 {
		t.Fatalf("bit depth = %d, want 16", got)
	}
	if got := (Stream{BitsPerRawSample: "24"}).BitDepth(); got != 24 {
		t.Fatalf("raw bit depth = %d, want 24", got)
	}
	if got := (Stream{}).BitDepth(); got != 0 {
		t.Fatalf("missing bit depth = %d, want 0", got)
	}
}

func TestDecodeProbePayload(t *testing.T) {
	payload := `{
  "streams": [
    {"index": 0, "codec_name": "pcm_s16le", "codec_type": "audio",
     "sample_rate": "22050", "channels": 2, "bits_per_sample": 16,
     "duration_ts": 2205000, "duration": "100.000000", "time_base": "1/22050"}
  ],
  "format": {"filename": "AMBIENT1.WAV", "nb_streams": 1, "duration": "100.000000", "size": "8820044", "format_name": "wav"}
}`
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	stream, ok := result.FirstAudioStream()
	if !ok {
		t.Fatal("expected audio stream")
	}
	if stream.SampleRateHz() != 22050 || stream.Channels != 2 || stream.BitDepth() != 16 {
		t.Fatalf("unexpected stream fields: %+v", stream)
	}
	if stream.DurationTS != 2205000 {
		t.Fatalf("duration_ts = %d, want 2205000", stream.DurationTS)
	}
}
