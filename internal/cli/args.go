package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xmlschemas/pkg/schemas"
	"github.com/vvka-141/xmlschemas/pkg/schemas/all"
)

// RequireBundleID validates that a bundle ID is the first argument and that
// at most maxArgs arguments are given.
// Returns a helpful error message with usage and examples if missing.
func RequireBundleID(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf(`missing required argument: <bundle>

Usage: %s

Example:
  %s dita13

Use 'xmlschemas list' to see available bundles.`, cmd.UseLine(), cmd.CommandPath())
		}
		if len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		return nil
	}
}

// lookupBundle resolves a bundle ID or reports ErrNotFound with the known IDs.
func lookupBundle(id string) (schemas.Bundle, error) {
	b, ok := all.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("bundle %q: %w (available: %v)", id, schemas.ErrNotFound, all.IDs())
	}
	return b, nil
}

// completeBundleIDs offers bundle IDs for the first positional argument.
func completeBundleIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return all.IDs(), cobra.ShellCompDirectiveNoFileComp
}
