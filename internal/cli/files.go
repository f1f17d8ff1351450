package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

var filesCmd = &cobra.Command{
	Use:   "files [bundle]",
	Short: "List the files of a bundle",
	Long: `List every file path of a bundle, one per line, in lexicographic order.

Examples:
  # All files of DITA 1.3
  xmlschemas files dita13

  # Only XSD files (matching is case-insensitive)
  xmlschemas files niso-sts --ext xsd

  # Files without an extension
  xmlschemas files tei --ext ""

  # Files of an archive written by 'xmlschemas archive'
  xmlschemas files --archive dita13.tar.gz`,
	Args:              filesArgs,
	ValidArgsFunction: completeBundleIDs,
	RunE:              runFiles,
}

var (
	filesExt     string
	filesArchive string
)

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringVar(&filesExt, "ext", "", "Only list files with this extension (e.g. xsd, rng, sch)")
	filesCmd.Flags().StringVar(&filesArchive, "archive", "", "List the files of a tar.gz archive instead of a bundle")
}

// filesArgs takes a bundle ID, or no argument when --archive names the source.
func filesArgs(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("archive") {
		if len(args) > 0 {
			return fmt.Errorf("accepts no bundle argument with --archive, received %d", len(args))
		}
		return nil
	}
	return RequireBundleID(1)(cmd, args)
}

func runFiles(cmd *cobra.Command, args []string) error {
	var (
		b   schemas.Bundle
		err error
	)
	if cmd.Flags().Changed("archive") {
		b, err = loadArchiveBundle(filesArchive)
	} else {
		b, err = lookupBundle(args[0])
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cmd.Flags().Changed("ext") {
		for _, p := range b.ListPaths() {
			fmt.Fprintln(out, p)
		}
		return nil
	}

	for _, f := range b.FilesByExtension(filesExt) {
		fmt.Fprintln(out, f.Path())
	}
	return nil
}
