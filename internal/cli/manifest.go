package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/checksum"
	"github.com/vvka-141/xmlschemas/internal/manifest"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <bundle>",
	Short: "Print the manifest of a bundle",
	Long: `Print the path, size, SHA-256 checksums and deterministic ID of every
file in a bundle.

The normalized checksum ignores XML comments and whitespace, so two copies
of a schema that differ only in formatting share it.

Examples:
  xmlschemas manifest dita13
  xmlschemas manifest jats --format yaml`,
	Args:              RequireBundleID(1),
	ValidArgsFunction: completeBundleIDs,
	RunE:              runManifest,
}

var manifestFormat string

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().StringVar(&manifestFormat, "format", "json", "Output format: json or yaml")
}

func runManifest(cmd *cobra.Command, args []string) error {
	projectCfg, _, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	format, err := resolveManifestFormat(cmd, manifestFormat, projectCfg)
	if err != nil {
		return err
	}

	b, err := lookupBundle(args[0])
	if err != nil {
		return err
	}

	return manifest.Encode(cmd.OutOrStdout(), manifest.Build(b, checksum.New()), format)
}
