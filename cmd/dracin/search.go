package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search dramas by keyword",
	Long: `Search dramas by keyword.

Examples:
  dracin search ceo
  dracin search "flash marriage" --provider mirror`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		resp, err := NewClient(serverURL, providerName).Search(query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printDramas(cmd.OutOrStdout(), resp.Items)
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <title>...",
	Short: "Find the drama whose title best matches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		resp, err := NewClient(serverURL, providerName).Lookup(title)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			printJSON(out, resp)
			return nil
		}
		fmt.Fprintf(out, "Matched %q (%s confidence, score %.2f)\n\n", resp.MatchedOn, resp.Confidence, resp.Score)
		printDrama(out, &resp.Drama)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)
}
