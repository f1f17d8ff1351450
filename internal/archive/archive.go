// Package archive packs schema bundles into gzip-compressed tarballs and
// loads tarballs back into an in-memory filesystem that schemas.Load accepts.
package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"testing/fstest"
	"time"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

const (
	// MaxArchiveSize is the maximum size of a compressed archive
	MaxArchiveSize int64 = 64 * 1024 * 1024 // 64MB

	// MaxFileSize is the maximum size of a single file in the archive
	MaxFileSize int64 = 16 * 1024 * 1024 // 16MB

	// MaxTotalSize is the maximum total size of extracted content
	MaxTotalSize int64 = 256 * 1024 * 1024 // 256MB
)

// ErrUnsafeArchive is returned for entries that are absolute, escape the
// archive root, are duplicated, exceed size limits or are not regular files,
// and for a file that is also used as a directory.
var ErrUnsafeArchive = errors.New("unsafe archive")

// modTime is stamped on every entry so that equal bundles produce equal archives.
var modTime = time.Unix(0, 0).UTC()

// WriteTarGz writes every file of b to w as a tar.gz in path order.
// It returns the number of files written.
func WriteTarGz(w io.Writer, b schemas.Bundle) (int, error) {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	written := 0
	for _, f := range b.Files() {
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     f.Path(),
			Mode:     int64(schemas.FilePerm),
			Size:     f.Size(),
			ModTime:  modTime,
			Format:   tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return written, fmt.Errorf("write tar header %s: %w", f.Path(), err)
		}
		if _, err := io.Copy(tw, f.Open()); err != nil {
			return written, fmt.Errorf("write tar entry %s: %w", f.Path(), err)
		}
		written++
	}

	if err := tw.Close(); err != nil {
		return written, fmt.Errorf("close tar: %w", err)
	}
	if err := gw.Close(); err != nil {
		return written, fmt.Errorf("close gzip: %w", err)
	}
	return written, nil
}

// ReadTarGz reads a tar.gz from r into an in-memory filesystem.
// Directory entries are skipped; any other non-regular entry is rejected.
func ReadTarGz(r io.Reader) (fs.FS, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxArchiveSize+1))
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if int64(len(data)) > MaxArchiveSize {
		return nil, fmt.Errorf("%w: archive exceeds max size (limit %d)", ErrUnsafeArchive, MaxArchiveSize)
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer gr.Close()

	mfs := make(fstest.MapFS)
	tr := tar.NewReader(gr)

	var totalBytes int64

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar header: %w", err)
		}

		name, err := sanitizeEntryName(hdr.Name)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			// directories are implicit in MapFS
			continue

		case tar.TypeReg:
			if hdr.Size > MaxFileSize {
				return nil, fmt.Errorf("%w: file %s exceeds max size (%d > %d)",
					ErrUnsafeArchive, name, hdr.Size, MaxFileSize)
			}
			if _, dup := mfs[name]; dup {
				return nil, fmt.Errorf("%w: duplicate entry %s", ErrUnsafeArchive, name)
			}

			content, err := io.ReadAll(io.LimitReader(tr, MaxFileSize+1))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", name, err)
			}
			if int64(len(content)) > MaxFileSize {
				return nil, fmt.Errorf("%w: file %s exceeds max size after read", ErrUnsafeArchive, name)
			}

			totalBytes += int64(len(content))
			if totalBytes > MaxTotalSize {
				return nil, fmt.Errorf("%w: total extracted size exceeds limit (%d bytes, max %d)",
					ErrUnsafeArchive, totalBytes, MaxTotalSize)
			}

			mfs[name] = &fstest.MapFile{
				Data:    content,
				Mode:    hdr.FileInfo().Mode().Perm(),
				ModTime: hdr.ModTime,
			}

		default:
			return nil, fmt.Errorf("%w: unsupported entry type %s (type=%d)",
				ErrUnsafeArchive, name, hdr.Typeflag)
		}
	}

	if err := checkFileDirConflicts(mfs); err != nil {
		return nil, err
	}
	return mfs, nil
}

// checkFileDirConflicts rejects a file whose name is also a parent directory
// of another entry. fstest.MapFS would hide the nested entry.
func checkFileDirConflicts(mfs fstest.MapFS) error {
	for name := range mfs {
		for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
			if _, ok := mfs[dir]; ok {
				return fmt.Errorf("%w: %s is both a file and the parent of %s", ErrUnsafeArchive, dir, name)
			}
		}
	}
	return nil
}

// sanitizeEntryName cleans a tar entry name. It returns "" for the archive root.
func sanitizeEntryName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	if path.IsAbs(name) {
		return "", fmt.Errorf("%w: absolute path %s", ErrUnsafeArchive, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: path traversal %s", ErrUnsafeArchive, name)
		}
	}

	clean := path.Clean(name)
	if clean == "." {
		return "", nil
	}
	return clean, nil
}
