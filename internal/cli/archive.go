package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/archive"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <bundle> <out.tar.gz>",
	Short: "Pack a bundle into a tar.gz archive",
	Long: `Write every file of a bundle into a gzip-compressed tarball in path order.
Use "-" to write the archive to stdout.

Examples:
  xmlschemas archive dita13 dita13.tar.gz
  xmlschemas archive tei - | tar -tzf -`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeBundleIDs,
	RunE:              runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	b, err := lookupBundle(args[0])
	if err != nil {
		return err
	}

	logger := newCommandLogger(cmd)
	target := args[1]

	if target == "-" {
		n, err := archive.WriteTarGz(cmd.OutOrStdout(), b)
		if err != nil {
			return err
		}
		logger.Verbose("Archived %d files to stdout", n)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), schemas.DirPerm); err != nil {
		return &schemas.IOError{Op: schemas.OpCreateDir, Path: filepath.Dir(target), Err: err}
	}
	f, err := os.Create(target)
	if err != nil {
		return &schemas.IOError{Op: schemas.OpWriteFile, Path: target, Err: err}
	}

	n, err := archive.WriteTarGz(f, b)
	if err != nil {
		f.Close()
		return &schemas.IOError{Op: schemas.OpWriteFile, Path: target, Err: err}
	}
	if err := f.Close(); err != nil {
		return &schemas.IOError{Op: schemas.OpWriteFile, Path: target, Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Archived %d files to %s\n", newPainter(out).render(successStyle, symbolCheck), n, target)
	return nil
}

// readArchive loads a tar.gz written by the archive command into memory.
func readArchive(name string) (fs.FS, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("archive %s: %w", name, schemas.ErrNotFound)
		}
		return nil, &schemas.IOError{Op: schemas.OpReadFile, Path: name, Err: err}
	}
	defer f.Close()

	fsys, err := archive.ReadTarGz(f)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", name, err)
	}
	return fsys, nil
}

// loadArchiveBundle loads a tar.gz as a bundle named after the file.
func loadArchiveBundle(name string) (*schemas.EmbeddedBundle, error) {
	fsys, err := readArchive(name)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(name)
	for _, ext := range []string{".tar.gz", ".tgz"} {
		base = strings.TrimSuffix(base, ext)
	}
	return schemas.Load(schemas.Info{Name: base}, fsys, ".")
}
