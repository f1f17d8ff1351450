package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
)

var catCmd = &cobra.Command{
	Use:   "cat <bundle> <path>",
	Short: "Print a schema file",
	Long: `Write the raw bytes of one file of a bundle to stdout.

Examples:
  xmlschemas cat dita xsd1.2/base/xsd/basemap.xsd
  xmlschemas cat spl SPL.xsd > SPL.xsd`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeBundleIDs,
	RunE:              runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	b, err := lookupBundle(args[0])
	if err != nil {
		return err
	}

	f, ok := b.GetFile(args[1])
	if !ok {
		return fmt.Errorf("file %q in bundle %s: %w", args[1], args[0], schemas.ErrNotFound)
	}

	if _, err := cmd.OutOrStdout().Write(f.Contents()); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path(), err)
	}
	return nil
}
