package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/reviewpilot/internal/gitutil"
	"github.com/sevigo/reviewpilot/internal/wire"
)

var reviewCmd = &cobra.Command{
	Use:   "review <pr-url> | <owner> <repo> <number>",
	Short: "Review a single pull request",
	Long: `Review a single pull request.

The review command fetches the pull request, its repository metadata and its
discussion history, then runs the agent review and the enabled analyses.

Examples:
  reviewpilot review https://github.com/octo/hello/pull/42
  reviewpilot review octo hello 42 --agent local --model llama3
  reviewpilot review octo hello 42 --no-performance --output json`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	addReviewFlags(reviewCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ref, err := gitutil.ParseRef(args)
	if err != nil {
		return fmt.Errorf("invalid pull request reference: %w", err)
	}
	if err := bindReviewFlags(cmd); err != nil {
		return err
	}

	appInstance, err := wire.InitializeApp(ctx, settings, os.LookupEnv)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	r := newReporter(cmd.OutOrStdout(), appInstance.Settings.Output)
	r.printHeader(appInstance.Settings, ref.String())

	bundle, err := appInstance.Review(ctx, ref)
	if err != nil {
		return fmt.Errorf("review of %s failed: %w", ref, err)
	}
	return r.printBundle(bundle)
}
