// Package review wires a GitProvider and a ReviewAgent together and runs
// single and batch pull request reviews.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
	"github.com/sevigo/reviewpilot/internal/github"
	"github.com/sevigo/reviewpilot/internal/llm"
)

// ProviderFactory builds the GitProvider for one provider kind.
type ProviderFactory func(ctx context.Context, cfg config.ReviewConfiguration, token string, logger *slog.Logger) (core.GitProvider, error)

// AgentFactory builds the ReviewAgent for one agent kind. apiKey is empty for
// agents that need no key.
type AgentFactory func(ctx context.Context, cfg config.ReviewConfiguration, apiKey string, logger *slog.Logger) (core.ReviewAgent, error)

var providerFactories = map[config.ProviderKind]ProviderFactory{
	config.ProviderGitHub:    newGitHubProvider,
	config.ProviderGitLab:    unsupportedProvider,
	config.ProviderBitbucket: unsupportedProvider,
}

var agentFactories = map[config.AgentKind]AgentFactory{
	config.AgentOpenAI:    newChatAgent,
	config.AgentLocal:     newChatAgent,
	config.AgentGemini:    newChatAgent,
	config.AgentAnthropic: unsupportedAgent,
	config.AgentCohere:    unsupportedAgent,
}

func newGitHubProvider(ctx context.Context, cfg config.ReviewConfiguration, token string, logger *slog.Logger) (core.GitProvider, error) {
	client, err := github.NewClientWithBaseURL(ctx, token, cfg.GitHubBaseURL, logger)
	if err != nil {
		return nil, err
	}
	return github.NewProvider(client, logger), nil
}

func unsupportedProvider(_ context.Context, cfg config.ReviewConfiguration, _ string, _ *slog.Logger) (core.GitProvider, error) {
	return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedProvider, cfg.Provider)
}

func newChatAgent(ctx context.Context, cfg config.ReviewConfiguration, apiKey string, logger *slog.Logger) (core.ReviewAgent, error) {
	return llm.NewChatAgent(ctx, cfg, apiKey, logger)
}

func unsupportedAgent(_ context.Context, cfg config.ReviewConfiguration, _ string, _ *slog.Logger) (core.ReviewAgent, error) {
	return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedAgent, cfg.Agent)
}

// Orchestrator owns one provider and one agent for its whole lifetime.
type Orchestrator struct {
	provider core.GitProvider
	agent    core.ReviewAgent
	logger   *slog.Logger
}

// New validates cfg, resolves the credentials it needs from creds and builds
// the provider and agent registered for the configured kinds.
func New(ctx context.Context, cfg config.ReviewConfiguration, creds config.Credentials, logger *slog.Logger) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	token, err := creds.ProviderToken(cfg.Provider)
	if err != nil {
		return nil, err
	}
	newProvider, ok := providerFactories[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, cfg.Provider)
	}
	provider, err := newProvider(ctx, cfg, token, logger)
	if err != nil {
		return nil, err
	}

	newAgent, ok := agentFactories[cfg.Agent]
	if !ok {
		return nil, fmt.Errorf("%w: unknown agent %q", core.ErrConfiguration, cfg.Agent)
	}
	apiKey, err := creds.AgentKey(cfg.Agent)
	if err != nil {
		return nil, err
	}
	agent, err := newAgent(ctx, cfg, apiKey, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("orchestrator ready", "provider", cfg.Provider, "agent", cfg.Agent, "model", cfg.ModelName)
	return NewWithComponents(provider, agent, logger), nil
}

// NewWithComponents builds an Orchestrator around existing implementations.
func NewWithComponents(provider core.GitProvider, agent core.ReviewAgent, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{provider: provider, agent: agent, logger: logger}
}

// RunReview fetches the pull request, repository info and history, then asks
// the agent to review. The agent only receives the pull request record.
func (o *Orchestrator) RunReview(ctx context.Context, owner, repo string, number int) (*core.ReviewBundle, error) {
	ref := core.PullRequestRef{Owner: owner, Repo: repo, Number: number}
	o.logger.Info("starting review", "pr", ref.String())

	pr, err := o.provider.FetchPullRequestDetails(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s: %w", ref, err)
	}
	info, err := o.provider.GetRepositoryInfo(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repo, err)
	}
	history, err := o.provider.GetPullRequestHistory(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history of %s: %w", ref, err)
	}

	result, err := o.agent.ReviewPullRequest(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to review %s: %w", ref, err)
	}

	return &core.ReviewBundle{
		PullRequest: pr,
		Repository:  info,
		History:     history,
		Review:      result,
	}, nil
}

// RunBatchReview reviews refs one after another in input order. The first
// failure aborts the batch and no results are returned.
func (o *Orchestrator) RunBatchReview(ctx context.Context, refs []core.PullRequestRef) ([]*core.ReviewBundle, error) {
	results := make([]*core.ReviewBundle, 0, len(refs))
	for i, ref := range refs {
		bundle, err := o.RunReview(ctx, ref.Owner, ref.Repo, ref.Number)
		if err != nil {
			o.logger.Error("batch review aborted", "pr", ref.String(), "position", i+1, "total", len(refs), "error", err)
			return nil, fmt.Errorf("batch review aborted at %d of %d: %w", i+1, len(refs), err)
		}
		results = append(results, bundle)
	}
	return results, nil
}
