package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string

	// settings is shared by every command; flags are bound to it before the
	// command runs and config.Load reads it afterwards.
	settings = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "reviewpilot",
	Short: "reviewpilot reviews pull requests with an LLM agent.",
	Long: `reviewpilot fetches a pull request from the hosting platform, runs a
tool-using LLM agent over it and prints a structured review with security,
performance and code quality findings.

Credentials are read from the environment (or a .env file):
  GITHUB_TOKEN, GITLAB_TOKEN, BITBUCKET_TOKEN,
  OPENAI_API_KEY, ANTHROPIC_API_KEY, COHERE_API_KEY, GEMINI_API_KEY`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./reviewpilot.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := settings.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig loads .env and tells viper where the config file lives.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		warnColor.Fprintf(os.Stderr, "⚠️  ignoring .env: %v\n", err)
	}

	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
		return
	}
	settings.SetConfigName("reviewpilot")
	settings.SetConfigType("yaml")
	settings.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		settings.AddConfigPath(home + "/.config/reviewpilot")
	}
}
