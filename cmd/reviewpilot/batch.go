package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/wire"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Review several pull requests listed in a YAML file",
	Long: `Review several pull requests listed in a YAML file.

Entries are reviewed in order. The first failure aborts the whole batch and
no partial results are printed.

Example file:
  reviews:
    - owner: octo
      repo: hello
      pr_number: 42
    - url: https://github.com/octo/world/pull/7`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	addReviewFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	refs, err := config.LoadBatchFile(args[0])
	if err != nil {
		return err
	}
	if err := bindReviewFlags(cmd); err != nil {
		return err
	}

	appInstance, err := wire.InitializeApp(ctx, settings, os.LookupEnv)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	r := newReporter(cmd.OutOrStdout(), appInstance.Settings.Output)
	r.printHeader(appInstance.Settings, fmt.Sprintf("%d pull requests from %s", len(refs), args[0]))

	bundles, err := appInstance.ReviewBatch(ctx, refs)
	if err != nil {
		return err
	}
	return r.printBundles(bundles)
}
