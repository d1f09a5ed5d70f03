package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListingCmd(listing, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   listing,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _ := cmd.Flags().GetInt("page")
			resp, err := NewClient(serverURL, providerName).List(listing, page)
			if err != nil {
				return fmt.Errorf("%s failed: %w", listing, err)
			}
			if jsonOutput {
				printJSON(cmd.OutOrStdout(), resp)
				return nil
			}
			printDramas(cmd.OutOrStdout(), resp.Items)
			return nil
		},
	}
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

var typeCmd = &cobra.Command{
	Use:   "type <type|category-id>",
	Short: "List dramas by listing type",
	Long: `List dramas by listing type or numeric category id.

Types: trending, latest, foryou, populersearch, vip, dubindo.

Examples:
  dracin type trending
  dracin type vip --page 2
  dracin type 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		resp, err := NewClient(serverURL, providerName).Type(args[0], page)
		if err != nil {
			return fmt.Errorf("type failed: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printDramas(cmd.OutOrStdout(), resp.Items)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [category-id]",
	Short: "List categories, or the dramas in one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategoriesCmd,
}

func runCategoriesCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, providerName)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category ID: %s", args[0])
		}
		page, _ := cmd.Flags().GetInt("page")
		resp, err := client.Category(id, page)
		if err != nil {
			return fmt.Errorf("category failed: %w", err)
		}
		if jsonOutput {
			printJSON(out, resp)
			return nil
		}
		printDramas(out, resp.Items)
		return nil
	}

	resp, err := client.Categories()
	if err != nil {
		return fmt.Errorf("categories failed: %w", err)
	}
	if jsonOutput {
		printJSON(out, resp)
		return nil
	}
	if len(resp.Items) == 0 {
		fmt.Fprintln(out, "No categories found")
		return nil
	}
	for _, c := range resp.Items {
		name := c.Name
		if c.ReplaceName != "" {
			name = c.ReplaceName
		}
		fmt.Fprintf(out, "%6d  %s\n", c.ID, name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newListingCmd("home", "List featured dramas"))
	rootCmd.AddCommand(newListingCmd("recommend", "List recommended dramas"))
	rootCmd.AddCommand(newListingCmd("vip", "List members-only dramas"))

	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().Int("page", 1, "Page number")

	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().Int("page", 1, "Page number")
}
