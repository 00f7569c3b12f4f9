package github

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/reviewpilot/internal/core"
)

const providerName = "GitHub"

// Provider implements core.GitProvider on top of the GitHub REST API.
type Provider struct {
	client Client
	logger *slog.Logger
}

var _ core.GitProvider = (*Provider)(nil)

// NewProvider returns a GitProvider backed by client.
func NewProvider(client Client, logger *slog.Logger) *Provider {
	return &Provider{client: client, logger: logger}
}

func apiError(op string, err error) error {
	return &core.ProviderAPIError{Provider: providerName, Op: op, Err: err}
}

// FetchPullRequestDetails resolves the pull request and its changed files.
// Diff carries only the patch of the first changed file.
func (p *Provider) FetchPullRequestDetails(ctx context.Context, owner, repo string, number int) (*core.PullRequest, error) {
	p.logger.Debug("fetching pull request", "repo", fmt.Sprintf("%s/%s", owner, repo), "pr", number)

	pr, err := p.client.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return nil, apiError("fetch pull request", err)
	}
	files, err := p.client.GetChangedFiles(ctx, owner, repo, number)
	if err != nil {
		return nil, apiError("list changed files", err)
	}

	changed := make([]string, 0, len(files))
	for _, f := range files {
		changed = append(changed, f.Filename)
	}
	diff := ""
	if len(files) > 0 {
		diff = files[0].Patch
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}
	assignees := make([]string, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return &core.PullRequest{
		Title:        pr.GetTitle(),
		Description:  pr.GetBody(),
		ChangedFiles: changed,
		Diff:         diff,
		Number:       pr.GetNumber(),
		Owner:        owner,
		Repo:         repo,
		BaseBranch:   pr.GetBase().GetRef(),
		HeadBranch:   pr.GetHead().GetRef(),
		CreatedAt:    timestamp(pr.CreatedAt),
		UpdatedAt:    timestamp(pr.UpdatedAt),
		Author:       pr.GetUser().GetLogin(),
		Labels:       labels,
		Assignees:    assignees,
	}, nil
}

// GetRepositoryInfo returns repository metadata.
func (p *Provider) GetRepositoryInfo(ctx context.Context, owner, repo string) (*core.RepositoryInfo, error) {
	r, err := p.client.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, apiError("fetch repository", err)
	}
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return &core.RepositoryInfo{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		DefaultBranch: r.GetDefaultBranch(),
		Topics:        topics,
		CreatedAt:     timestamp(r.CreatedAt),
		UpdatedAt:     timestamp(r.UpdatedAt),
	}, nil
}

// GetPullRequestHistory returns the conversation comments followed by the
// inline review comments, each group in the order GitHub returned it.
func (p *Provider) GetPullRequestHistory(ctx context.Context, owner, repo string, number int) ([]core.HistoryEntry, error) {
	comments, err := p.client.ListIssueComments(ctx, owner, repo, number)
	if err != nil {
		return nil, apiError("list comments", err)
	}
	reviewComments, err := p.client.ListReviewComments(ctx, owner, repo, number)
	if err != nil {
		return nil, apiError("list review comments", err)
	}

	history := make([]core.HistoryEntry, 0, len(comments)+len(reviewComments))
	for _, c := range comments {
		history = append(history, core.HistoryEntry{
			Kind:      core.HistoryComment,
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: timestamp(c.CreatedAt),
		})
	}
	for _, c := range reviewComments {
		history = append(history, core.HistoryEntry{
			Kind:      core.HistoryReviewComment,
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: timestamp(c.CreatedAt),
			Path:      c.GetPath(),
			Line:      c.GetLine(),
		})
	}

	p.logger.Debug("fetched pull request history", "pr", number, "comments", len(comments), "review_comments", len(reviewComments))
	return history, nil
}

func timestamp(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
