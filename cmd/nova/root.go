package main

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/novahq/nova/internal/config"
	"github.com/novahq/nova/internal/dataset"
	"github.com/novahq/nova/internal/dlogger"
	"github.com/novahq/nova/internal/remote"
)

var log = dlogger.MustNew("info")

var rootCmd = &cobra.Command{
	Use:   "nova",
	Short: "Client for the nova dataset service",
	Long: `nova creates, pushes, clones, searches and lists datasets hosted on a
remote server. Datasets are grouped in collections and addressed as
collection/name. Configuration comes from ~/.config/nova/config, the
working directory's .nova/config, and flags, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		l, err := dlogger.New(level)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
}

// overridesFromFlags collects the override layer from flags the user
// actually set; unset flags never shadow file configuration.
func overridesFromFlags(cmd *cobra.Command) map[string]string {
	overrides := map[string]string{}
	for _, key := range []string{config.KeyRemote, config.KeyToken} {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

// resolveConfig merges global, local and flag configuration for the
// current working directory and validates it.
func resolveConfig(cmd *cobra.Command) (config.Effective, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Effective{}, err
	}
	return config.NewResolver(afero.NewOsFs(), wd).Resolve(overridesFromFlags(cmd))
}

func newRemote(eff config.Effective) (*remote.Client, error) {
	return remote.New(eff.Remote, eff.Token, remote.WithLogger(log))
}

// refFromArgs takes an explicit collection/name argument, falling back
// to the configured dataset.
func refFromArgs(args []string, eff config.Effective) (dataset.Ref, error) {
	if len(args) > 0 {
		return dataset.Parse(args[0])
	}
	if eff.Collection == "" || eff.Name == "" {
		return dataset.Ref{}, errors.New("no dataset configured: run nova init or pass collection/name")
	}
	return dataset.Ref{Collection: eff.Collection, Name: eff.Name}, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("remote", "", "Remote server URL (overrides configuration)")
	rootCmd.PersistentFlags().String("token", "", "Auth token (overrides configuration)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, none)")
}
