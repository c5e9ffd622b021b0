// Package scan discovers candidate audio files for map generation.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions covers the containers the legacy soundtrack sources
// ship in.
var DefaultExtensions = []string{".wav", ".aif", ".aiff", ".ogg", ".mp3", ".flac"}

// Files returns the regular files in dir whose extension matches one of the
// provided extensions, compared case-insensitively. The scan is
// non-recursive and results are sorted by name. A nil extension list uses
// DefaultExtensions.
func Files(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := allowed[ext]; !ok {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(matches)
	return matches, nil
}

// TrackName returns the track identifier for an input path: the basename
// without extension, uppercased the way the legacy engine names tracks.
func TrackName(path string) string {
	base := filepath.Base(path)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}
