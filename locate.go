package riskmap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carbocation/pfx"
)

// ErrNoInput indicates that no candidate input file was found. Callers
// decide whether that is fatal for their run.
var ErrNoInput = errors.New("no input file found")

// InputFile describes one candidate input file. Tests and other callers
// that already know the directory contents can construct these directly
// instead of touching the real filesystem clock.
type InputFile struct {
	Name    string
	Path    string
	ModTime time.Time
}

// LatestFile returns the candidate with an accepted extension that was
// modified most recently. Extension matching is case-insensitive. When two
// candidates share a modification time, the lexicographically greater name
// wins, so repeated runs over the same listing always agree.
func LatestFile(files []InputFile, extensions []string) (InputFile, bool) {
	var best InputFile
	found := false

	for _, f := range files {
		if !hasAnyExtension(f.Name, extensions) {
			continue
		}

		if !found {
			best, found = f, true
			continue
		}

		if f.ModTime.After(best.ModTime) ||
			(f.ModTime.Equal(best.ModTime) && f.Name > best.Name) {
			best = f
		}
	}

	return best, found
}

// LatestInDir reads dir and returns the path of the most recently modified
// file carrying one of the accepted extensions. A missing directory or an
// empty match set yields ErrNoInput rather than a hard failure.
func LatestInDir(dir string, extensions []string) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", ErrNoInput
	} else if err != nil {
		return "", pfx.Err(err)
	}

	files := make([]InputFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return "", pfx.Err(err)
		}

		files = append(files, InputFile{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	best, found := LatestFile(files, extensions)
	if !found {
		return "", ErrNoInput
	}

	return best.Path, nil
}

func hasAnyExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}

	return false
}
