package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
	"github.com/vvka-141/xmlschemas/pkg/schemas/all"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded schema bundles",
	Long: `List every embedded schema bundle with its ID, version, license,
file count and total size.

Examples:
  # Human-readable listing
  xmlschemas list

  # Machine-readable listing
  xmlschemas list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listJSON bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

// listEntry is the JSON form of one bundle in the listing.
type listEntry struct {
	ID string `json:"id"`
	schemas.Summary
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ids := all.IDs()
	summaries := all.Summaries()

	if listJSON {
		entries := make([]listEntry, 0, len(ids))
		for i, id := range ids {
			entries = append(entries, listEntry{ID: id, Summary: summaries[i]})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode bundle list: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	p := newPainter(out)
	for i, id := range ids {
		fmt.Fprintf(out, "%s %s\n",
			p.render(idStyle, fmt.Sprintf("%-12s", id)),
			summaries[i].String())
	}
	return nil
}
