package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server status and configured providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := NewClient(serverURL, "").Status()
		if err != nil {
			return fmt.Errorf("status check failed: %w", err)
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			printJSON(out, status)
			return nil
		}
		fmt.Fprintf(out, "Server:    %s (%s)\n", serverURL, status.Status)
		fmt.Fprintf(out, "Version:   %s\n", status.Version)
		fmt.Fprintf(out, "Providers: %s\n", strings.Join(status.Providers, ", "))
		fmt.Fprintf(out, "Default:   %s\n", status.DefaultProvider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
