package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "xmlschemas",
	Short: "Embedded XML schemas for publishing standards",
	Long: `xmlschemas ships the schema files of common XML publishing standards
(DITA, NISO STS, JATS, BITS, DocBook, Akoma Ntoso, TEI, SPL) inside a single
binary. List the bundles, print individual files, or extract a whole bundle
to disk for validators and editors that need the files locally.

Defaults can be set in xmlschemas.yaml in the working directory. The
XMLSCHEMAS_OUTPUT environment variable (or a .env file) overrides the
output directory; command line flags override both.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - Bundle or file not found
  15 - Directory creation or file write failed
  16 - Extracted files differ from the bundle`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// newCommandLogger returns a logger on the command's stderr honoring --verbose.
func newCommandLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
