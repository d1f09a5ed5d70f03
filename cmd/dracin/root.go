package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL    string
	providerName string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "dracin",
	Short: "CLI client for the dracin catalog proxy",
	Long: `dracin - CLI client for the dracin catalog proxy

Browse, search and resolve streams for short dramas through a
running dracind server. All output is normalized across providers.

Run 'dracind' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8484", "Server URL")
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "p", "", "Upstream provider (default: server default)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("dracin {{.Version}}\n")
}
