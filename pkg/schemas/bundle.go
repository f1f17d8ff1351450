package schemas

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vvka-141/xmlschemas/internal/files/filesystem"
)

// Info identifies a schema bundle.
type Info struct {
	Name    string // human-readable standard name, e.g. "DITA", "NISO STS"
	Version string // standard version, e.g. "1.2", "P5"
	License string // license identifier, e.g. "OASIS-IPR", "Apache-2.0"
}

// Key returns a lowercase slug of name and version, e.g. "niso-sts-1.0".
func (i Info) Key() string {
	name := strings.ToLower(strings.Join(strings.Fields(i.Name), "-"))
	version := strings.ToLower(strings.Join(strings.Fields(i.Version), "-"))
	if version == "" {
		return name
	}
	return name + "-" + version
}

// Bundle is the capability every schema bundle provides: enumerate, look up,
// filter, measure and extract an immutable tree of schema files.
type Bundle interface {
	// Info returns the bundle's name, version and license.
	Info() Info

	// ListPaths returns every file path in lexicographic order.
	// Each call returns a fresh slice.
	ListPaths() []string

	// Files returns every file in path order.
	Files() []File

	// GetFile looks up a file by its relative path. A miss is not an error.
	GetFile(path string) (File, bool)

	// FindFiles returns the files for which pred returns true, in path order.
	FindFiles(pred func(File) bool) []File

	// FilesByExtension returns the files whose extension equals ext, ignoring case.
	FilesByExtension(ext string) []File

	// FileCount returns the number of files in the bundle.
	FileCount() int

	// TotalSize returns the sum of all content lengths in bytes.
	TotalSize() int64

	// WriteToDirectory writes every file under dir, creating parent
	// directories as needed, and returns how many files were written.
	WriteToDirectory(dir string) (int, error)
}

// EmbeddedBundle is the Bundle implementation shared by every standard package.
// It is immutable after construction and safe for concurrent use.
type EmbeddedBundle struct {
	info      Info
	files     []File // sorted by path
	index     map[string]int
	totalSize int64
}

var _ Bundle = (*EmbeddedBundle)(nil)

// NewBundle builds a bundle from explicit path/content pairs. Keys are
// normalized like GetFile arguments; a key that is empty, absolute or escapes
// the root returns ErrInvalidPath, and two keys that normalize to the same
// path return ErrDuplicatePath. Contents are copied.
func NewBundle(info Info, files map[string][]byte) (*EmbeddedBundle, error) {
	normalized := make(map[string][]byte, len(files))
	for raw, content := range files {
		p, ok := normalizePath(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
		}
		if _, dup := normalized[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, p)
		}
		normalized[p] = content
	}

	out := make([]File, 0, len(normalized))
	for p, content := range normalized {
		out = append(out, newFile(p, content))
	}
	return newEmbeddedBundle(info, out), nil
}

// Load builds a bundle from every regular file under root in fsys.
// Paths in the bundle are relative to root. Directories are not recorded.
func Load(info Info, fsys fs.FS, root string) (*EmbeddedBundle, error) {
	provider := filesystem.NewFSFileSystem(fsys, root)

	dir, err := provider.Open(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open schema root %s: %w", provider.Root(), err)
	}

	var files []File
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking schema tree: %w", err)
		}
		if !file.Info().Mode().IsRegular() {
			return nil
		}

		relPath := file.RelativePath()
		if !isNormalized(relPath) {
			return fmt.Errorf("%w: %q", ErrInvalidPath, relPath)
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", relPath, err)
		}

		files = append(files, newFile(relPath, content))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newEmbeddedBundle(info, files), nil
}

// MustLoad is like Load but panics on error. It is intended for embedded
// trees, where a failure means the binary was built incorrectly.
func MustLoad(info Info, fsys fs.FS, root string) *EmbeddedBundle {
	b, err := Load(info, fsys, root)
	if err != nil {
		panic(fmt.Sprintf("schemas: load %s: %v", info.Key(), err))
	}
	return b
}

func newEmbeddedBundle(info Info, files []File) *EmbeddedBundle {
	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })

	b := &EmbeddedBundle{
		info:  info,
		files: files,
		index: make(map[string]int, len(files)),
	}
	for i, f := range files {
		b.index[f.path] = i
		b.totalSize += f.Size()
	}
	return b
}

func (b *EmbeddedBundle) Info() Info { return b.info }

func (b *EmbeddedBundle) ListPaths() []string {
	paths := make([]string, len(b.files))
	for i, f := range b.files {
		paths[i] = f.path
	}
	return paths
}

func (b *EmbeddedBundle) Files() []File {
	out := make([]File, len(b.files))
	copy(out, b.files)
	return out
}

func (b *EmbeddedBundle) GetFile(p string) (File, bool) {
	p, ok := normalizePath(p)
	if !ok {
		return File{}, false
	}
	i, ok := b.index[p]
	if !ok {
		return File{}, false
	}
	return b.files[i], true
}

func (b *EmbeddedBundle) FindFiles(pred func(File) bool) []File {
	out := []File{}
	for _, f := range b.files {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

func (b *EmbeddedBundle) FilesByExtension(ext string) []File {
	return b.FindFiles(func(f File) bool { return matchesExtension(f.path, ext) })
}

func (b *EmbeddedBundle) FileCount() int { return len(b.files) }

func (b *EmbeddedBundle) TotalSize() int64 { return b.totalSize }

// Summary is a one-line description of a bundle.
type Summary struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	License   string `json:"license" yaml:"license"`
	FileCount int    `json:"file_count" yaml:"file_count"`
	TotalSize int64  `json:"total_size" yaml:"total_size"`
}

// Summarize collects b's metadata and totals.
func Summarize(b Bundle) Summary {
	info := b.Info()
	return Summary{
		Name:      info.Name,
		Version:   info.Version,
		License:   info.License,
		FileCount: b.FileCount(),
		TotalSize: b.TotalSize(),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%s v%s (%s) - %d files, %d bytes",
		s.Name, s.Version, s.License, s.FileCount, s.TotalSize)
}

// normalizePath converts a caller-supplied path to bundle form: forward
// slashes, cleaned, no leading "./". It reports false for empty, absolute
// or escaping paths.
func normalizePath(p string) (string, bool) {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" || strings.HasPrefix(p, "/") {
		return "", false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", false
		}
	}
	p = path.Clean(p)
	if p == "." {
		return "", false
	}
	return p, true
}

// isNormalized reports whether p is already in bundle form.
func isNormalized(p string) bool {
	return fs.ValidPath(p) && p != "." && !strings.Contains(p, "\\")
}
