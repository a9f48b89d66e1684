package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/geo"
)

var locationsCommand = &cobra.Command{
	Use:   "locations",
	Short: "Inspect the location gazetteer",
	Long: `Utilities for the built-in location gazetteer: autocomplete suggestions
for partial location text, and validation of the location strings used in a
job's location requirement.`,
}

var suggestLimit int

var suggestCommand = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggest known locations matching partial text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := geo.NewIndex()
		matches := index.Suggest(args[0], suggestLimit)
		if len(matches) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No locations match %q\n", args[0])
			return nil
		}
		for _, loc := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), loc.Name)
		}
		return nil
	},
}

var validateCommand = &cobra.Command{
	Use:   "validate <location>...",
	Short: "Check whether location strings resolve against the gazetteer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := geo.NewIndex()
		results := index.ValidateRequirements(args)

		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)

		unresolved := 0
		for _, name := range names {
			status := "ok"
			if !results[name] {
				status = "unresolved"
				unresolved++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", name, status)
		}
		if unresolved > 0 {
			return fmt.Errorf("%d location(s) did not resolve", unresolved)
		}
		return nil
	},
}

func init() {
	suggestCommand.Flags().IntVarP(&suggestLimit, "limit", "n", 5, "Maximum number of suggestions")

	locationsCommand.AddCommand(suggestCommand)
	locationsCommand.AddCommand(validateCommand)
	rootCmd.AddCommand(locationsCommand)
}
