package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <[section.]key>",
	Short: "Print a configuration value (local overlays global)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, key := splitConfigKey(args[0])
		fs := afero.NewOsFs()

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		local, err := config.Load(fs, config.LocalPath(wd))
		if err != nil {
			return err
		}
		if v, err := local.Get(section, key); err == nil {
			fmt.Println(v)
			return nil
		}

		globalPath, err := config.GlobalPath()
		if err != nil {
			return err
		}
		global, err := config.Load(fs, globalPath)
		if err != nil {
			return err
		}
		v, err := global.Get(section, key)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <[section.]key> <value>",
	Short: "Set a configuration value in the local or global file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, key := splitConfigKey(args[0])
		useGlobal, _ := cmd.Flags().GetBool("global")

		var path string
		var err error
		if useGlobal {
			path, err = config.GlobalPath()
			if err != nil {
				return err
			}
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			path = config.LocalPath(wd)
		}

		fs := afero.NewOsFs()
		cfg, err := config.Load(fs, path)
		if err != nil {
			return err
		}
		cfg.Set(section, key, args[1])
		return config.Write(fs, cfg, path)
	},
}

// splitConfigKey splits "section.key", defaulting to the core section.
func splitConfigKey(s string) (string, string) {
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i], s[i+1:]
	}
	return config.CoreSection, s
}

func init() {
	configSetCmd.Flags().Bool("global", false, "Write the per-user file instead of .nova/config")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
