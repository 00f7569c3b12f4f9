// Package app bundles the loaded settings, the logger and the review
// orchestrator used by the CLI commands.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
	"github.com/sevigo/reviewpilot/internal/review"
)

// App holds the main application components.
type App struct {
	Settings     *config.Settings
	Logger       *slog.Logger
	Orchestrator *review.Orchestrator
}

// NewApp sets up the application with all its dependencies.
func NewApp(settings *config.Settings, orchestrator *review.Orchestrator, logger *slog.Logger) *App {
	logger.Debug("reviewpilot initialized",
		"provider", settings.Review.Provider,
		"agent", settings.Review.Agent,
		"model", settings.Review.ModelName)
	return &App{Settings: settings, Logger: logger, Orchestrator: orchestrator}
}

// Review runs a single pull request review.
func (a *App) Review(ctx context.Context, ref core.PullRequestRef) (*core.ReviewBundle, error) {
	start := time.Now()
	bundle, err := a.Orchestrator.RunReview(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		a.Logger.Error("review failed", "pr", ref.String(), "error", err)
		return nil, err
	}
	a.Logger.Info("review complete", "pr", ref.String(), "elapsed", time.Since(start).Round(time.Millisecond))
	return bundle, nil
}

// ReviewBatch reviews every ref in order and fails as a whole on the first error.
func (a *App) ReviewBatch(ctx context.Context, refs []core.PullRequestRef) ([]*core.ReviewBundle, error) {
	a.Logger.Info("starting batch review", "count", len(refs))
	return a.Orchestrator.RunBatchReview(ctx, refs)
}
