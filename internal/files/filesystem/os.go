package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// diskEntry is a File found while walking a directory on disk.
type diskEntry struct {
	name  string // OS path
	rel   string // slash-separated, relative to the walked directory
	entry fs.DirEntry
	info  fs.FileInfo
}

func (e *diskEntry) Path() string         { return e.name }
func (e *diskEntry) RelativePath() string { return e.rel }
func (e *diskEntry) Info() FileInfo       { return e.info }

func (e *diskEntry) ReadContent() ([]byte, error) {
	if e.entry.IsDir() {
		return nil, fmt.Errorf("%s is a directory", e.name)
	}
	return os.ReadFile(e.name)
}

// diskDir is an extracted schema directory on disk.
type diskDir struct {
	root string // absolute OS path
}

func (d *diskDir) Path() string { return d.root }

// Walk reports entries in lexical order. Symlinks are reported, not followed.
func (d *diskDir) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.root, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}
		if name == d.root {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fn(nil, fmt.Errorf("stat %s: %w", name, err))
		}
		rel, err := filepath.Rel(d.root, name)
		if err != nil {
			return fn(nil, fmt.Errorf("relative path of %s: %w", name, err))
		}

		return fn(&diskEntry{name: name, rel: filepath.ToSlash(rel), entry: entry, info: info}, nil)
	})
}

// OSFileSystem reads extracted schema trees back from disk.
type OSFileSystem struct{}

// NewOSFileSystem returns a provider over the host filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open returns the directory at dir. Errors wrap fs.ErrNotExist when it is missing.
func (p *OSFileSystem) Open(dir string) (Directory, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}
	return &diskDir{root: abs}, nil
}

// ReadFile reads name. Errors wrap fs.ErrNotExist when it is missing.
func (p *OSFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// Stat describes name without following a final symlink.
func (p *OSFileSystem) Stat(name string) (FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", name, err)
	}
	return info, nil
}
