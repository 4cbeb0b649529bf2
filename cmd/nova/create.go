package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/dataset"
	"github.com/novahq/nova/internal/remote"
)

var createCmd = &cobra.Command{
	Use:   "create <collection/name>",
	Short: "Create a dataset on the remote server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := dataset.Parse(args[0])
		if err != nil {
			return err
		}
		eff, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newRemote(eff)
		if err != nil {
			return err
		}

		description, _ := cmd.Flags().GetString("description")
		path, _ := cmd.Flags().GetString("path")
		err = client.CreateDataset(cmd.Context(), remote.CreateRequest{
			Collection:  ref.Collection,
			Name:        ref.Name,
			Description: description,
			Path:        path,
			Created:     time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", ref)
		return nil
	},
}

func init() {
	createCmd.Flags().String("description", "", "Dataset description")
	createCmd.Flags().String("path", "", "Path hint stored with the dataset")
	rootCmd.AddCommand(createCmd)
}
