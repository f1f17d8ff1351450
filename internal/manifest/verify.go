package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/internal/files/filesystem"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

// Mismatch reasons reported by Verify, Extras and Compare.
const (
	ReasonMissing  = "missing"
	ReasonSize     = "size"
	ReasonChecksum = "checksum"
	ReasonExtra    = "extra"
)

// Mismatch is a manifest entry that does not match the file on disk.
type Mismatch struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s", m.Path, m.Reason)
}

// Verify reads every manifest entry from dir through provider and reports
// the entries whose file is missing or whose size or raw checksum differ.
// Files in dir that the manifest does not list are ignored.
//
// An entry path that is empty, absolute or escapes dir fails with
// schemas.ErrInvalidPath before anything is read. Otherwise an error is
// returned only when a file exists but cannot be read.
func Verify(m *Manifest, provider filesystem.FileSystemProvider, calc checksum.Calculator, dir string) ([]Mismatch, error) {
	for _, e := range m.Files {
		if !validEntryPath(e.Path) {
			return nil, fmt.Errorf("%w: manifest entry %q", schemas.ErrInvalidPath, e.Path)
		}
	}

	var mismatches []Mismatch
	for _, e := range m.Files {
		target := filepath.Join(dir, filepath.FromSlash(e.Path))

		data, err := provider.ReadFile(target)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonMissing})
				continue
			}
			return mismatches, fmt.Errorf("failed to read %s: %w", target, err)
		}

		switch {
		case int64(len(data)) != e.Size:
			mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonSize})
		case calc.CalculateRaw(data) != e.SHA256:
			mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonChecksum})
		}
	}

	return mismatches, nil
}

// Extras walks dir through provider and reports every regular file that m
// does not list, in walk order. Manifest files written next to extracted
// files are not reported.
func Extras(m *Manifest, provider filesystem.FileSystemProvider, dir string) ([]Mismatch, error) {
	root, err := provider.Open(dir)
	if err != nil {
		return nil, err
	}

	listed := make(map[string]struct{}, len(m.Files))
	for _, e := range m.Files {
		listed[e.Path] = struct{}{}
	}

	var extras []Mismatch
	err = root.Walk(func(f filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !f.Info().Mode().IsRegular() {
			return nil
		}
		rel := f.RelativePath()
		if rel == FormatJSON.FileName() || rel == FormatYAML.FileName() {
			return nil
		}
		if _, ok := listed[rel]; !ok {
			extras = append(extras, Mismatch{Path: rel, Reason: ReasonExtra})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return extras, nil
}

// Compare reports the entries of want that got lacks or records with a
// different size or raw checksum. Entries only got lists are ignored.
func Compare(want, got *Manifest) []Mismatch {
	var mismatches []Mismatch
	for _, e := range want.Files {
		g, ok := got.Lookup(e.Path)
		switch {
		case !ok:
			mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonMissing})
		case g.Size != e.Size:
			mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonSize})
		case g.SHA256 != e.SHA256:
			mismatches = append(mismatches, Mismatch{Path: e.Path, Reason: ReasonChecksum})
		}
	}
	return mismatches
}

// ReadRecorded loads the manifest that extraction wrote into dir, trying
// manifest.json before manifest.yaml. It returns a nil manifest and no error
// when dir holds neither. The returned name is the manifest's path.
func ReadRecorded(provider filesystem.FileSystemProvider, dir string) (*Manifest, string, error) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		name := filepath.Join(dir, format.FileName())

		info, err := provider.Stat(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, err
		}
		if !info.Mode().IsRegular() {
			return nil, name, fmt.Errorf("%s is not a regular file", name)
		}

		data, err := provider.ReadFile(name)
		if err != nil {
			return nil, name, err
		}
		m, err := Decode(bytes.NewReader(data), format)
		if err != nil {
			return nil, name, fmt.Errorf("%s: %w", name, err)
		}
		return m, name, nil
	}
	return nil, "", nil
}

// validEntryPath accepts clean, relative, slash-separated paths that stay
// inside the directory being verified.
func validEntryPath(p string) bool {
	if p == "" || p == "." || strings.Contains(p, `\`) {
		return false
	}
	if path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return false
	}
	if path.Clean(p) != p {
		return false
	}
	return p != ".." && !strings.HasPrefix(p, "../")
}
