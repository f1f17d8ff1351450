package schemas

import (
	"os"
	"path/filepath"
)

// WriteToDirectory writes every file under dir in path order, mirroring the
// bundle's relative layout. Existing files are overwritten. The first failure
// stops extraction: the returned count is the number of files fully written
// before it and the error is an *IOError naming the failing path. Files
// already written are not removed.
func (b *EmbeddedBundle) WriteToDirectory(dir string) (int, error) {
	count := 0
	for _, f := range b.files {
		if err := WriteFile(dir, f); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// WriteFile writes a single file under dir at its relative path, creating
// parent directories as needed. Failures are returned as *IOError.
func WriteFile(dir string, f File) error {
	target := filepath.Join(dir, filepath.FromSlash(f.path))

	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, DirPerm); err != nil {
		return &IOError{Op: OpCreateDir, Path: parent, Err: err}
	}

	if err := os.WriteFile(target, []byte(f.data), FilePerm); err != nil {
		return &IOError{Op: OpWriteFile, Path: target, Err: err}
	}

	return nil
}
