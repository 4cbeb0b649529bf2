package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/archive"
)

var pushCmd = &cobra.Command{
	Use:   "push [collection/name]",
	Short: "Pack the working directory and upload it",
	Long: `Packs every file under the working directory into a gzip tar stream
and uploads it as the dataset's new snapshot. .nova/config and paths
matching .novaignore are never packed. The dataset defaults to the one
the directory was initialized for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eff, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		ref, err := refFromArgs(args, eff)
		if err != nil {
			return err
		}
		client, err := newRemote(eff)
		if err != nil {
			return err
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		stream, err := archive.Pack(afero.NewOsFs(), wd)
		if err != nil {
			return err
		}

		if err := client.PushData(cmd.Context(), ref.Collection, ref.Name, stream); err != nil {
			return err
		}
		fmt.Printf("Pushed %s (%d bytes)\n", ref, stream.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
