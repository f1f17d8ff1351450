package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// fsFile implements File interface for an fs.FS
type fsFile struct {
	fsys    fs.FS
	absPath string // path within the fs.FS (always uses forward slashes)
	relPath string // relative path from root
	info    fs.FileInfo
}

func (f *fsFile) Path() string         { return f.absPath }
func (f *fsFile) RelativePath() string { return f.relPath }
func (f *fsFile) Info() FileInfo       { return f.info }

func (f *fsFile) ReadContent() ([]byte, error) {
	return fs.ReadFile(f.fsys, f.absPath)
}

// fsDirectory implements Directory interface for an fs.FS
type fsDirectory struct {
	fsys    fs.FS
	absPath string // path within the fs.FS (always uses forward slashes)
	root    string // root path for calculating relative paths
}

func (d *fsDirectory) Path() string { return d.absPath }

func (d *fsDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.fsys, d.absPath, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}

		if filePath == d.absPath {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err))
		}

		file := &fsFile{
			fsys:    d.fsys,
			absPath: filePath,
			relPath: relativeTo(d.root, filePath),
			info:    info,
		}

		return fn(file, nil)
	})
}

// relativeTo strips root from p. Both are clean slash paths and p is under root.
func relativeTo(root, p string) string {
	if root == "." {
		return p
	}
	return strings.TrimPrefix(p, root+"/")
}

// FSFileSystem implements FileSystemProvider for any fs.FS, typically an embed.FS.
type FSFileSystem struct {
	fsys fs.FS
	root string // root path within the fs.FS (always uses forward slashes)
}

// NewFSFileSystem creates a new filesystem provider wrapping fsys.
// The root parameter specifies the subdirectory within fsys to treat as the root.
// All paths are normalized to use forward slashes for consistency with io/fs.
func NewFSFileSystem(fsys fs.FS, root string) *FSFileSystem {
	root = strings.ReplaceAll(root, "\\", "/")
	root = strings.TrimPrefix(path.Clean("/"+root), "/")
	if root == "" {
		root = "."
	}
	return &FSFileSystem{
		fsys: fsys,
		root: root,
	}
}

// Root returns the normalized root path within the wrapped fs.FS.
func (p *FSFileSystem) Root() string { return p.root }

// resolve maps a caller path to a path inside the wrapped fs.FS.
func (p *FSFileSystem) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "."
	}
	return path.Join(p.root, name)
}

// Open implements FileSystemProvider.Open
func (p *FSFileSystem) Open(openPath string) (Directory, error) {
	absPath := p.resolve(openPath)

	info, err := fs.Stat(p.fsys, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &fsDirectory{
		fsys:    p.fsys,
		absPath: absPath,
		root:    p.root,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (p *FSFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(p.fsys, p.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// Stat implements FileSystemProvider.Stat
func (p *FSFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(p.fsys, p.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
