package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

// ErrUnknownFormat is returned for an encoding format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Format selects a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FileName is the conventional name of a manifest in format f written next
// to extracted files, e.g. "manifest.json".
func (f Format) FileName() string {
	return "manifest." + string(f)
}

// ParseFormat parses a case-insensitive format name. "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json or yaml)", ErrUnknownFormat, s)
	}
}

// Entry describes a single file of a bundle.
type Entry struct {
	Path             string `json:"path" yaml:"path"`
	Size             int64  `json:"size" yaml:"size"`
	SHA256           string `json:"sha256" yaml:"sha256"`
	NormalizedSHA256 string `json:"normalizedSha256" yaml:"normalized_sha256"`
	ID               string `json:"id" yaml:"id"`
}

// Manifest lists every file of a bundle in path order.
type Manifest struct {
	Name      string  `json:"name" yaml:"name"`
	Version   string  `json:"version" yaml:"version"`
	License   string  `json:"license" yaml:"license"`
	FileCount int     `json:"fileCount" yaml:"file_count"`
	TotalSize int64   `json:"totalSize" yaml:"total_size"`
	Files     []Entry `json:"files" yaml:"files"`
}

// Build computes the manifest of a bundle.
func Build(b schemas.Bundle, calc checksum.Calculator) *Manifest {
	info := b.Info()
	key := info.Key()

	files := b.Files()
	m := &Manifest{
		Name:      info.Name,
		Version:   info.Version,
		License:   info.License,
		FileCount: b.FileCount(),
		TotalSize: b.TotalSize(),
		Files:     make([]Entry, 0, len(files)),
	}

	for _, f := range files {
		content := f.Contents()
		m.Files = append(m.Files, Entry{
			Path:             f.Path(),
			Size:             f.Size(),
			SHA256:           calc.CalculateRaw(content),
			NormalizedSHA256: calc.CalculateNormalized(content),
			ID:               FileID(key, f.Path()).String(),
		})
	}

	return m
}

// Lookup returns the entry for path.
func (m *Manifest) Lookup(path string) (Entry, bool) {
	for _, e := range m.Files {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// Encode writes m to w in the given format.
func Encode(w io.Writer, m *Manifest, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode manifest as json: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode manifest as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a manifest in the given format from r.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse json manifest: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse yaml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &m, nil
}
