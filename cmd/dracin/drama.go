package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <book-id>",
	Short: "Show drama details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := NewClient(serverURL, providerName).Drama(args[0])
		if err != nil {
			return fmt.Errorf("show failed: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), d)
			return nil
		}
		printDrama(cmd.OutOrStdout(), d)
		return nil
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <book-id>",
	Short: "List a drama's episodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := NewClient(serverURL, providerName).Episodes(args[0])
		if err != nil {
			return fmt.Errorf("episodes failed: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printEpisodes(cmd.OutOrStdout(), resp.Items)
		return nil
	},
}

var streamCmd = &cobra.Command{
	Use:   "stream <book-id> <episode>",
	Short: "Resolve the stream URLs of one episode",
	Long: `Resolve the stream URLs of one episode.

The default quality is marked with '*'. Use --url to print only the
default URL, e.g. for piping into a player:

  mpv "$(dracin stream 41000102 3 --url)"`,
	Args: cobra.ExactArgs(2),
	RunE: runStreamCmd,
}

func runStreamCmd(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid episode number: %s", args[1])
	}
	urlOnly, _ := cmd.Flags().GetBool("url")

	resp, err := NewClient(serverURL, providerName).Stream(args[0], n)
	if err != nil {
		return fmt.Errorf("stream failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		printJSON(out, resp)
	case urlOnly:
		for _, q := range resp.Qualities {
			if q.IsDefault {
				fmt.Fprintln(out, q.VideoURL)
				return nil
			}
		}
		return fmt.Errorf("no stream for episode %d", n)
	default:
		printQualities(out, resp.Qualities)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().Bool("url", false, "Print only the default stream URL")
}
