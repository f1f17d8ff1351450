// Package extract writes schema bundles to disk with logging and an optional
// guard against overwriting a populated directory.
package extract

import (
	"errors"
	"fmt"
	"os"

	"github.com/vvka-141/xmlschemas/internal/logging"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

// ErrTargetNotEmpty is returned when the extractor requires an empty target
// and the target already holds files.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// managedFiles may exist in a target that still counts as empty.
var managedFiles = map[string]bool{
	"xmlschemas.yaml": true,
	".env":            true,
}

// Result reports what an extraction wrote.
type Result struct {
	Files int
	Bytes int64
}

// Extractor writes bundles to a target directory.
type Extractor struct {
	logger       schemas.Logger
	requireEmpty bool
}

// NewExtractor creates an Extractor. A nil logger discards all messages.
func NewExtractor(logger schemas.Logger, requireEmpty bool) *Extractor {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Extractor{
		logger:       logger,
		requireEmpty: requireEmpty,
	}
}

// Extract writes every file of b under target, creating the directory when
// needed. Existing files are overwritten. It stops at the first failure and
// returns what was written before it.
func (e *Extractor) Extract(b schemas.Bundle, target string) (Result, error) {
	var res Result
	info := b.Info()

	if e.requireEmpty {
		isEmpty, err := isDirectoryEmpty(target)
		if err != nil {
			return res, fmt.Errorf("failed to check target directory: %w", err)
		}
		if !isEmpty {
			return res, fmt.Errorf("%w: %s", ErrTargetNotEmpty, target)
		}
	}

	if err := os.MkdirAll(target, schemas.DirPerm); err != nil {
		return res, &schemas.IOError{Op: schemas.OpCreateDir, Path: target, Err: err}
	}

	e.logger.Verbose("Extracting %s %s (%d files) to %s", info.Name, info.Version, b.FileCount(), target)

	for _, f := range b.Files() {
		if err := schemas.WriteFile(target, f); err != nil {
			e.logger.Error("Extraction stopped after %d files: %v", res.Files, err)
			return res, err
		}
		res.Files++
		res.Bytes += f.Size()
		e.logger.Verbose("Wrote %s (%d bytes)", f.Path(), f.Size())
	}

	return res, nil
}

// isDirectoryEmpty checks if a directory is empty or doesn't exist.
// Configuration files in managedFiles are ignored.
// Returns (false, error) if path is not a directory or cannot be read.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory: %s", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if !managedFiles[entry.Name()] {
			return false, nil
		}
	}
	return true, nil
}
