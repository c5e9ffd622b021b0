package musicmap

import (
	"fmt"
	"path/filepath"
	"strings"

	"imusemap/internal/segment"
)

// DefaultExtension is the map file extension the downstream compressor expects.
const DefaultExtension = ".imp"

// LoopCount is the repeat count written into the jump directive. The tool
// always writes 500; users can raise it by hand (e.g. 9999) for an
// effectively endless loop.
const LoopCount = 500

// loopMarkerText labels the loop re-entry point.
const loopMarkerText = "lp"

// Map is the write-only iMUSE map document for one track. It is built from
// a segment plan, rendered once, and discarded.
type Map struct {
	Name  string
	Intro segment.Region
	Loop  segment.Region
	Outro segment.Region
}

// Build constructs the map document for a named track.
func Build(name string, plan segment.Plan) Map {
	return Map{
		Name:  name,
		Intro: plan.Intro,
		Loop:  plan.Loop,
		Outro: plan.Outro,
	}
}

// Render serializes the map into the fixed text layout.
func (m Map) Render() string {
	var b strings.Builder
	b.Grow(256)

	b.WriteString("[iMUSE Map]\n")
	b.WriteString("Version = 1\n")

	b.WriteString("\n[FRMT]\n")
	b.WriteString("Position = 0\n")
	b.WriteString("Unknown = 1\n")

	b.WriteString("\n[REGN1]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Intro.Start)
	fmt.Fprintf(&b, "Length = %d\n", m.Intro.Length)

	b.WriteString("\n[TEXT3]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Loop.Start)
	fmt.Fprintf(&b, "Text = %s\n", loopMarkerText)

	b.WriteString("\n[REGN2]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Loop.Start)
	fmt.Fprintf(&b, "Length = %d\n", m.Loop.Length)

	b.WriteString("\n[JUMP1]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Outro.Start)
	fmt.Fprintf(&b, "JumpDest = %d\n", m.Loop.Start)
	b.WriteString("ID = 0\n")
	fmt.Fprintf(&b, "Loop = %d\n", LoopCount)

	b.WriteString("\n[REGN3]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Outro.Start)
	fmt.Fprintf(&b, "Length = %d\n", m.Outro.Length)

	b.WriteString("\n[STOP]\n")
	fmt.Fprintf(&b, "Position = %d\n", m.Outro.End())

	return b.String()
}

// TargetPath returns the map path for an input file: the same directory and
// basename with the map extension. An empty ext selects DefaultExtension.
func TargetPath(inputPath, ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + ext
}
