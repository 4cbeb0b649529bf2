package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search datasets on the remote server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eff, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newRemote(eff)
		if err != nil {
			return err
		}

		results, err := client.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return writeSearchResults(os.Stdout, results, format)
	},
}

func init() {
	searchCmd.Flags().String("format", "table", "Output format (table, json, yaml)")
	rootCmd.AddCommand(searchCmd)
}
