package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/internal/files/filesystem"
	"github.com/vvka-141/xmlschemas/internal/manifest"
	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <bundle> [dir]",
	Short: "Check that a directory or archive matches a bundle",
	Long: `Compare every file of a bundle with the file at the same relative path
under a directory, or inside a tar.gz archive given with --archive. Missing
files and files whose size or checksum differ are reported. Extra files are
ignored unless --strict is set.

When the directory holds a manifest.json or manifest.yaml written by
'extract --manifest', that manifest is checked against the bundle first and
then used for the comparison.

Exits with code 16 when any file differs.

Examples:
  xmlschemas extract dita13 ./dita13 --manifest
  xmlschemas verify dita13 ./dita13

  xmlschemas archive tei tei.tar.gz
  xmlschemas verify tei --archive tei.tar.gz --strict`,
	Args:              RequireBundleID(2),
	ValidArgsFunction: completeBundleIDs,
	RunE:              runVerify,
}

var verifyFlags struct {
	archive string
	strict  bool
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyFlags.archive, "archive", "", "Verify a tar.gz archive instead of a directory")
	verifyCmd.Flags().BoolVar(&verifyFlags.strict, "strict", false, "Also report files the bundle does not contain")
}

// verifyTarget picks the provider and root that verify reads from.
func verifyTarget(cmd *cobra.Command, args []string) (filesystem.FileSystemProvider, string, string, error) {
	useArchive := cmd.Flags().Changed("archive")
	switch {
	case useArchive && len(args) > 1:
		return nil, "", "", fmt.Errorf("invalid argument %q: give a directory or --archive, not both", args[1])
	case useArchive:
		fsys, err := readArchive(verifyFlags.archive)
		if err != nil {
			return nil, "", "", err
		}
		return filesystem.NewFSFileSystem(fsys, "."), ".", verifyFlags.archive, nil
	case len(args) < 2:
		return nil, "", "", fmt.Errorf("missing required argument: [dir] or --archive\n\nUsage: %s", cmd.UseLine())
	default:
		return filesystem.NewOSFileSystem(), args[1], args[1], nil
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	provider, root, label, err := verifyTarget(cmd, args)
	if err != nil {
		return err
	}
	b, err := lookupBundle(args[0])
	if err != nil {
		return err
	}

	logger := newCommandLogger(cmd)
	out := cmd.OutOrStdout()
	p := newPainter(out)
	calc := checksum.New()

	want := manifest.Build(b, calc)
	recorded, recordedName, err := manifest.ReadRecorded(provider, root)
	if err != nil {
		return fmt.Errorf("failed to read recorded manifest: %w", err)
	}
	if recorded != nil {
		if stale := manifest.Compare(want, recorded); len(stale) > 0 {
			for _, m := range stale {
				fmt.Fprintf(out, "%s %s: %s\n", p.render(errorStyle, symbolCross), recordedName, m)
			}
			return fmt.Errorf("%s does not describe %s (%d entries differ): %w",
				recordedName, args[0], len(stale), schemas.ErrVerifyFailed)
		}
		logger.Verbose("Using recorded manifest %s", recordedName)
		want = recorded
	}

	mismatches, err := manifest.Verify(want, provider, calc, root)
	if err != nil {
		return err
	}
	if verifyFlags.strict {
		extras, err := manifest.Extras(want, provider, root)
		if err != nil {
			return err
		}
		mismatches = append(mismatches, extras...)
	}

	if len(mismatches) == 0 {
		fmt.Fprintf(out, "%s %s matches %s (%d files)\n", p.render(successStyle, symbolCheck), label, args[0], len(want.Files))
		return nil
	}

	for _, m := range mismatches {
		fmt.Fprintf(out, "%s %s\n", p.render(errorStyle, symbolCross), m)
	}
	return fmt.Errorf("%d of %d files differ: %w", len(mismatches), len(want.Files), schemas.ErrVerifyFailed)
}
