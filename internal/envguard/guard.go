// Package envguard verifies that the configuration and secret files a
// deploy depends on exist before any destructive lifecycle action runs.
// A failed check must leave the running workload untouched, so the
// guard performs stat calls only and never mutates anything.
package envguard

import (
	"fmt"
	"os"
	"path/filepath"
)

// Requirement is a file that must exist in the project directory at
// deploy time, such as a credentials bundle or an env file.
type Requirement struct {
	// Path is the file location, relative paths resolve against the
	// project directory.
	Path string
}

// MissingFileError reports the first required file that was not found.
// The path is surfaced verbatim so the operator can fix it without
// guessing.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file missing: %s", e.Path)
}

// Verify checks each requirement in order and fails fast on the first
// missing file. A requirement pointing at a directory also fails: the
// workload expects readable files, not placeholders.
func Verify(projectDir string, reqs []Requirement) error {
	for _, req := range reqs {
		path := req.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return &MissingFileError{Path: req.Path}
		}
	}
	return nil
}
