package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/config"
	"github.com/novahq/nova/internal/dataset"
)

var initCmd = &cobra.Command{
	Use:   "init <collection/name>",
	Short: "Initialize the working directory for a dataset",
	Long: `Writes .nova/config in the working directory, binding it to the given
dataset. Remote and token are taken from the global configuration or
the --remote/--token flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := dataset.Parse(args[0])
		if err != nil {
			return err
		}
		eff, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		cfg := config.New()
		cfg.Set(config.CoreSection, config.KeyRemote, eff.Remote)
		cfg.Set(config.CoreSection, config.KeyToken, eff.Token)
		cfg.Set(config.CoreSection, config.KeyCollection, ref.Collection)
		cfg.Set(config.CoreSection, config.KeyName, ref.Name)
		if err := config.Write(afero.NewOsFs(), cfg, config.LocalPath(wd)); err != nil {
			return err
		}
		fmt.Printf("Initialized %s for %s\n", wd, ref)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
