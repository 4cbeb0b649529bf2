package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/archive"
	"github.com/novahq/nova/internal/config"
	"github.com/novahq/nova/internal/dataset"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <collection/name> [dir]",
	Short: "Download a dataset snapshot into a directory",
	Long: `Downloads the dataset's current snapshot and extracts it into dir
(default: the dataset name). The directory is initialized afterwards,
so push works from it directly.`,
	Args: cobra.RangeArgs(1, 2),
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

		dest := ref.Name
		if len(args) > 1 {
			dest = args[1]
		}

		stream, err := client.CloneData(cmd.Context(), ref.Collection, ref.Name)
		if err != nil {
			return err
		}

		fs := afero.NewOsFs()
		if err := archive.Unpack(fs, stream, dest); err != nil {
			return err
		}

		cfg := config.New()
		cfg.Set(config.CoreSection, config.KeyRemote, eff.Remote)
		cfg.Set(config.CoreSection, config.KeyToken, eff.Token)
		cfg.Set(config.CoreSection, config.KeyCollection, ref.Collection)
		cfg.Set(config.CoreSection, config.KeyName, ref.Name)
		if err := config.Write(fs, cfg, config.LocalPath(dest)); err != nil {
			return err
		}
		fmt.Printf("Cloned %s into %s\n", ref, dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}
