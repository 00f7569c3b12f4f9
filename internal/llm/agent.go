package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
)

// ChatAgent reviews pull requests with a single chat model. The main review
// runs through the ReAct loop with the analysis tools; the security,
// performance and quality analyses are separate prompts.
type ChatAgent struct {
	cfg      config.ReviewConfiguration
	provider ModelProvider
	prompts  *PromptManager
	gen      Generator
	tools    []Tool
	memory   *ConversationMemory
	logger   *slog.Logger
	now      func() time.Time
}

var _ core.ReviewAgent = (*ChatAgent)(nil)

// Option customizes a ChatAgent.
type Option func(*ChatAgent)

// WithClock replaces time.Now, used to measure ReviewTime.
func WithClock(now func() time.Time) Option {
	return func(a *ChatAgent) { a.now = now }
}

type prPromptData struct {
	Title        string
	Description  string
	ChangedFiles string
	Diff         string
}

func newPRPromptData(pr *core.PullRequest) prPromptData {
	return prPromptData{
		Title:        pr.Title,
		Description:  pr.Description,
		ChangedFiles: strings.Join(pr.ChangedFiles, ", "),
		Diff:         pr.Diff,
	}
}

// NewChatAgent creates the model backend for cfg.Agent and sets up the agent.
func NewChatAgent(ctx context.Context, cfg config.ReviewConfiguration, apiKey string, logger *slog.Logger, opts ...Option) (*ChatAgent, error) {
	gen, err := NewGenerator(ctx, cfg, apiKey, logger)
	if err != nil {
		return nil, err
	}
	return NewChatAgentWithGenerator(cfg, gen, logger, opts...)
}

// NewChatAgentWithGenerator sets up the agent around an existing backend.
// Setup runs in a fixed order: model, tools, memory. A non-positive
// MaxAgentIterations falls back to config.DefaultMaxAgentIterations.
func NewChatAgentWithGenerator(cfg config.ReviewConfiguration, gen Generator, logger *slog.Logger, opts ...Option) (*ChatAgent, error) {
	prompts, err := NewPromptManager()
	if err != nil {
		return nil, err
	}
	if cfg.MaxAgentIterations <= 0 {
		cfg.MaxAgentIterations = config.DefaultMaxAgentIterations
	}

	a := &ChatAgent{
		cfg:      cfg,
		provider: ModelProvider(cfg.Agent),
		prompts:  prompts,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.setupModel(gen); err != nil {
		return nil, err
	}
	a.setupTools()
	a.setupMemory()
	return a, nil
}

func (a *ChatAgent) setupModel(gen Generator) error {
	if gen == nil {
		return errors.New("model backend is required")
	}
	a.gen = gen
	a.logger.Debug("model configured", "agent", a.cfg.Agent, "model", a.cfg.ModelName,
		"temperature", a.cfg.Temperature, "max_tokens", a.cfg.MaxTokens)
	return nil
}

func (a *ChatAgent) setupTools() {
	a.tools = reviewTools(a.prompts, a.provider, a.gen)
}

func (a *ChatAgent) setupMemory() {
	if a.cfg.Memory {
		a.memory = NewConversationMemory()
	}
}

// Memory returns the conversation memory, or nil when memory is disabled.
func (a *ChatAgent) Memory() *ConversationMemory {
	return a.memory
}

func (a *ChatAgent) executor() *Executor {
	return &Executor{
		gen:           a.gen,
		prompts:       a.prompts,
		provider:      a.provider,
		tools:         a.tools,
		memory:        a.memory,
		maxIterations: a.cfg.MaxAgentIterations,
		logger:        a.logger,
	}
}

// reviewPrompt fills the custom template when one is configured; it uses the
// {title}, {description}, {changed_files} and {diff} placeholders.
func (a *ChatAgent) reviewPrompt(pr *core.PullRequest) (string, error) {
	data := newPRPromptData(pr)
	if a.cfg.CustomPrompt == "" {
		return a.prompts.Render(ReviewPrompt, a.provider, data)
	}
	return strings.NewReplacer(
		"{title}", data.Title,
		"{description}", data.Description,
		"{changed_files}", data.ChangedFiles,
		"{diff}", data.Diff,
	).Replace(a.cfg.CustomPrompt), nil
}

// ReviewPullRequest runs the agent review followed by the enabled analyses.
func (a *ChatAgent) ReviewPullRequest(ctx context.Context, pr *core.PullRequest) (*core.ReviewResult, error) {
	start := a.now()
	a.logger.Info("reviewing pull request", "repo", pr.FullName(), "pr", pr.Number, "model", a.cfg.ModelName)

	prompt, err := a.reviewPrompt(pr)
	if err != nil {
		return nil, err
	}
	summary, err := a.executor().Run(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("agent review failed: %w", err)
	}

	security, performance, quality, err := a.runAnalyses(ctx, pr)
	if err != nil {
		return nil, err
	}

	result := &core.ReviewResult{
		Summary:           summary,
		Issues:            quality.Issues,
		Suggestions:       quality.Suggestions,
		SecurityConcerns:  security,
		PerformanceIssues: performance,
		Complexity:        quality.Complexity,
		Readability:       quality.Readability,
		Maintainability:   quality.Maintainability,
		QualityScore:      QualityScore(quality.Complexity, quality.Readability, quality.Maintainability),
		ConfidenceScore:   ConfidenceScore(summary),
		TokensUsed:        EstimateTokens(summary),
		Model:             a.cfg.ModelName,
	}
	result.ReviewTime = a.now().Sub(start).Seconds()

	a.logger.Info("review finished", "repo", pr.FullName(), "pr", pr.Number,
		"quality_score", result.QualityScore, "duration_s", result.ReviewTime)
	return result, nil
}

// runAnalyses runs the enabled analyses. A disabled analysis leaves its
// result empty; a disabled quality analysis keeps the Medium ratings.
func (a *ChatAgent) runAnalyses(ctx context.Context, pr *core.PullRequest) ([]string, []string, *core.QualityReport, error) {
	security := []string{}
	performance := []string{}
	quality := ParseQualityReport("")

	var tasks []func(context.Context) error
	if a.cfg.SecurityAnalysis {
		tasks = append(tasks, func(ctx context.Context) error {
			res, err := a.AnalyzeSecurity(ctx, pr)
			security = res
			return err
		})
	}
	if a.cfg.PerformanceAnalysis {
		tasks = append(tasks, func(ctx context.Context) error {
			res, err := a.AnalyzePerformance(ctx, pr)
			performance = res
			return err
		})
	}
	if a.cfg.QualityAnalysis {
		tasks = append(tasks, func(ctx context.Context) error {
			res, err := a.AnalyzeCodeQuality(ctx, pr)
			if res != nil {
				quality = res
			}
			return err
		})
	}

	if a.cfg.ParallelAnalysis {
		g, gctx := errgroup.WithContext(ctx)
		for _, task := range tasks {
			g.Go(func() error { return task(gctx) })
		}
		if err := g.Wait(); err != nil {
			return nil, nil, nil, err
		}
	} else {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return nil, nil, nil, err
			}
		}
	}

	return security, performance, quality, nil
}

func (a *ChatAgent) ask(ctx context.Context, key PromptKey, pr *core.PullRequest) (string, error) {
	prompt, err := a.prompts.Render(key, a.provider, newPRPromptData(pr))
	if err != nil {
		return "", err
	}
	response, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s analysis failed: %w", key, err)
	}
	return response, nil
}

// AnalyzeSecurity returns one security concern per non-blank response line.
func (a *ChatAgent) AnalyzeSecurity(ctx context.Context, pr *core.PullRequest) ([]string, error) {
	response, err := a.ask(ctx, SecurityPrompt, pr)
	if err != nil {
		return nil, err
	}
	return SplitFindings(response), nil
}

// AnalyzePerformance returns one performance issue per non-blank response line.
func (a *ChatAgent) AnalyzePerformance(ctx context.Context, pr *core.PullRequest) ([]string, error) {
	response, err := a.ask(ctx, PerformancePrompt, pr)
	if err != nil {
		return nil, err
	}
	return SplitFindings(response), nil
}

func (a *ChatAgent) AnalyzeCodeQuality(ctx context.Context, pr *core.PullRequest) (*core.QualityReport, error) {
	response, err := a.ask(ctx, QualityPrompt, pr)
	if err != nil {
		return nil, err
	}
	return ParseQualityReport(response), nil
}
