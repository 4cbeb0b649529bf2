package main

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your datasets on the remote server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eff, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newRemote(eff)
		if err != nil {
			return err
		}

		datasets, err := client.ListDatasets(cmd.Context())
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return writeDatasets(os.Stdout, datasets, format)
	},
}

func init() {
	listCmd.Flags().String("format", "table", "Output format (table, json, yaml)")
	rootCmd.AddCommand(listCmd)
}
