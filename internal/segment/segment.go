package segment

import (
	"fmt"
	"strings"
)

const (
	// baselineSeconds is the fixed intro/outro baseline. Empirically
	// discovered for the original game tracks; not validated as correct
	// for arbitrary material.
	baselineSeconds = 6

	// Intro extra allowance in hundredths of a second. FRCONCOURSE is the
	// one track known to need a longer lead-in.
	introExtraHundredths          = 25
	introExtraHundredthsConcourse = 32
	concourseTrack                = "FRCONCOURSE"
)

// Region is a contiguous byte range within the raw audio data.
type Region struct {
	Start  int64
	Length int64
}

// End returns the first byte past the region.
func (r Region) End() int64 {
	return r.Start + r.Length
}

// Plan holds the three computed regions for one track.
type Plan struct {
	Intro Region
	Loop  Region
	Outro Region
}

// Stop returns the end-of-data position the stop marker must carry.
func (p Plan) Stop() int64 {
	return p.Outro.End()
}

// ConsistencyError reports that the computed regions do not cover the data
// exactly. It indicates an arithmetic defect in this package, not bad input.
type ConsistencyError struct {
	Track    string
	Stop     int64
	DataSize int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("segment plan for %q inconsistent: stop position %d, data size %d", e.Track, e.Stop, e.DataSize)
}

// Compute derives the intro/loop/outro regions for a track.
//
// dataSize is the raw audio payload in bytes and must be non-negative;
// bytesPerSecond must be positive. trackName selects the intro allowance
// and is compared case-insensitively.
func Compute(dataSize, bytesPerSecond int64, trackName string) (Plan, error) {
	if dataSize < 0 {
		return Plan{}, fmt.Errorf("compute segments: negative data size %d", dataSize)
	}
	if bytesPerSecond <= 0 {
		return Plan{}, fmt.Errorf("compute segments: non-positive byte rate %d", bytesPerSecond)
	}

	baseBytes := bytesPerSecond * baselineSeconds
	extra := int64(introExtraHundredths)
	if strings.EqualFold(trackName, concourseTrack) {
		extra = introExtraHundredthsConcourse
	}
	// Hundredths keep the seconds-to-bytes conversion in integer math;
	// division truncates toward zero.
	introExtraBytes := bytesPerSecond * extra / 100

	introLength := baseBytes + introExtraBytes
	outroLength := baseBytes
	loopLength := dataSize - introLength - outroLength

	if loopLength < 0 {
		// Track shorter than the fixed baselines: proportional split.
		introLength = dataSize / 10
		outroLength = dataSize / 10
		loopLength = dataSize - introLength - outroLength
	}

	plan := Plan{
		Intro: Region{Start: 0, Length: introLength},
		Loop:  Region{Start: introLength, Length: loopLength},
		Outro: Region{Start: introLength + loopLength, Length: outroLength},
	}

	if plan.Stop() != dataSize {
		return Plan{}, &ConsistencyError{Track: trackName, Stop: plan.Stop(), DataSize: dataSize}
	}
	return plan, nil
}
