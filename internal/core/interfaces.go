package core

import "context"

// GitProvider fetches pull request data from a Git hosting platform. Every
// failure of the underlying API (transport, authentication, not found, rate
// limit) is reported as a *ProviderAPIError.
//
//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . GitProvider,ReviewAgent
type GitProvider interface {
	// FetchPullRequestDetails resolves a pull request by number and returns its
	// normalized metadata.
	FetchPullRequestDetails(ctx context.Context, owner, repo string, number int) (*PullRequest, error)
	// GetRepositoryInfo returns repository metadata.
	GetRepositoryInfo(ctx context.Context, owner, repo string) (*RepositoryInfo, error)
	// GetPullRequestHistory returns general comments followed by inline review
	// comments. The two groups are not merged by timestamp.
	GetPullRequestHistory(ctx context.Context, owner, repo string, number int) ([]HistoryEntry, error)
}

// ReviewAgent drives a language model to review a pull request. It only ever
// sees the PullRequest record, never repository or history context.
type ReviewAgent interface {
	ReviewPullRequest(ctx context.Context, pr *PullRequest) (*ReviewResult, error)
	AnalyzeSecurity(ctx context.Context, pr *PullRequest) ([]string, error)
	AnalyzePerformance(ctx context.Context, pr *PullRequest) ([]string, error)
	AnalyzeCodeQuality(ctx context.Context, pr *PullRequest) (*QualityReport, error)
}
