package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/internal/extract"
	"github.com/vvka-141/xmlschemas/internal/logging"
	"github.com/vvka-141/xmlschemas/internal/manifest"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract <bundle> [dir]",
	Short: "Write a bundle to a directory",
	Long: `Write every file of a bundle under a directory, creating parent
directories as needed. Existing files are overwritten. Extraction stops at
the first failure.

The directory defaults to the XMLSCHEMAS_OUTPUT environment variable, then
the output setting of xmlschemas.yaml, then the bundle ID.

Examples:
  # Extract DITA 1.3 into ./dita13
  xmlschemas extract dita13

  # Extract into a fresh directory and show what was written
  xmlschemas extract jats ./schemas/jats --require-empty --tree

  # Also write manifest.json for later verification
  xmlschemas extract niso-sts ./sts --manifest`,
	Args:              RequireBundleID(2),
	ValidArgsFunction: completeBundleIDs,
	RunE:              runExtract,
}

type extractFlagValues struct {
	requireEmpty bool
	tree         bool
	manifest     bool
	format       string
}

var extractFlags extractFlagValues

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractFlags.requireEmpty, "require-empty", false, "Refuse to extract into a non-empty directory")
	extractCmd.Flags().BoolVar(&extractFlags.tree, "tree", false, "Print the extracted file tree")
	extractCmd.Flags().BoolVar(&extractFlags.manifest, "manifest", false, "Write a manifest next to the extracted files")
	extractCmd.Flags().StringVar(&extractFlags.format, "format", "json", "Manifest format: json or yaml")
}

func runExtract(cmd *cobra.Command, args []string) error {
	projectCfg, envCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	b, err := lookupBundle(args[0])
	if err != nil {
		return err
	}

	var dirArg string
	if len(args) > 1 {
		dirArg = args[1]
	}
	target := resolveOutputDir(dirArg, envCfg, projectCfg, args[0])
	requireEmpty := resolveBoolFlag(cmd, "require-empty", extractFlags.requireEmpty, projectCfg.RequireEmpty)
	writeManifest := resolveBoolFlag(cmd, "manifest", extractFlags.manifest, projectCfg.Manifest)
	verbose := getVerboseFlag(cmd) || envCfg.Verbose || projectCfg.Verbose

	format, err := resolveManifestFormat(cmd, extractFlags.format, projectCfg)
	if err != nil {
		return err
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)
	res, err := extract.NewExtractor(logger, requireEmpty).Extract(b, target)
	if err != nil {
		return err
	}

	if writeManifest {
		path, err := writeManifestFile(b, target, format)
		if err != nil {
			return err
		}
		logger.Verbose("Wrote manifest %s", path)
	}

	out := cmd.OutOrStdout()
	p := newPainter(out)
	info := b.Info()
	fmt.Fprintf(out, "%s Extracted %s %s: %d files, %d bytes to %s\n",
		p.render(successStyle, symbolCheck), info.Name, info.Version, res.Files, res.Bytes, target)

	if extractFlags.tree {
		tree, err := extract.BuildFileTree(target)
		if err != nil {
			return err
		}
		fmt.Fprint(out, tree)
	}
	return nil
}

// writeManifestFile writes the bundle manifest into dir and returns its path.
func writeManifestFile(b schemas.Bundle, dir string, format manifest.Format) (string, error) {
	path := filepath.Join(dir, format.FileName())

	f, err := os.Create(path)
	if err != nil {
		return "", &schemas.IOError{Op: schemas.OpWriteFile, Path: path, Err: err}
	}

	m := manifest.Build(b, checksum.New())
	if err := manifest.Encode(f, m, format); err != nil {
		f.Close()
		return "", &schemas.IOError{Op: schemas.OpWriteFile, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &schemas.IOError{Op: schemas.OpWriteFile, Path: path, Err: err}
	}
	return path, nil
}
