package schemas

import (
	"io"
	"path"
	"strings"
	"unicode/utf8"
)

// File is a single schema file with its bundle-relative path and content.
// The zero value is an empty, pathless file and is what lookups return on a miss.
type File struct {
	path string
	data string // immutable copy of the embedded bytes
}

func newFile(p string, content []byte) File {
	return File{path: p, data: string(content)}
}

// Path returns the slash-separated path relative to the bundle root,
// e.g. "xsd1.2/base/xsd/basemap.xsd".
func (f File) Path() string { return f.path }

// Name returns the base name of the file, e.g. "basemap.xsd".
func (f File) Name() string {
	if f.path == "" {
		return ""
	}
	return path.Base(f.path)
}

// Extension returns the suffix after the last "." of the base name without
// the dot ("xsd"), in its original case. Files without one return "".
func (f File) Extension() string {
	return extensionOf(f.path)
}

// Size returns the content length in bytes.
func (f File) Size() int64 { return int64(len(f.data)) }

// Contents returns a copy of the raw file bytes.
func (f File) Contents() []byte { return []byte(f.data) }

// Text returns the content as a string, or ErrNotUTF8 if it is not valid UTF-8.
func (f File) Text() (string, error) {
	if !utf8.ValidString(f.data) {
		return "", ErrNotUTF8
	}
	return f.data, nil
}

// Open returns a reader over the content. The reader does not copy.
func (f File) Open() io.Reader { return strings.NewReader(f.data) }

// extensionOf returns the extension of the base name of p, without the dot.
func extensionOf(p string) string {
	base := p
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		base = p[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}

// matchesExtension reports whether p has extension ext, ignoring case and a
// single leading dot in ext.
func matchesExtension(p, ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(extensionOf(p), ext)
}
