package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/reviewpilot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and credential status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.Load(settings)
		if err != nil {
			return err
		}
		r := newReporter(cmd.OutOrStdout(), "text")
		r.printSettings(s)
		r.printCredentials(config.LoadCredentials(os.LookupEnv))
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(configCmd)
}
