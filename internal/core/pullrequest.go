// Package core defines the essential interfaces and data structures that form the
// backbone of the application. Providers and agents are described here as
// abstract contracts so the orchestrator never depends on a concrete backend.
package core

import (
	"fmt"
	"time"
)

// PullRequest is the platform independent view of a pull request. It is built
// once per review by a GitProvider and only read afterwards.
type PullRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// ChangedFiles keeps the order the provider returned; it is not guaranteed
	// to be stable across calls.
	ChangedFiles []string `json:"changed_files"`
	// Diff holds the patch of the first changed file only. It is empty when
	// the pull request has no file changes.
	Diff       string     `json:"diff"`
	Number     int        `json:"number"`
	Owner      string     `json:"owner"`
	Repo       string     `json:"repo"`
	BaseBranch string     `json:"base_branch"`
	HeadBranch string     `json:"head_branch"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Author     string     `json:"author,omitempty"`
	Labels     []string   `json:"labels"`
	Assignees  []string   `json:"assignees"`
}

// FullName returns the "owner/repo" identifier of the repository the pull
// request belongs to.
func (pr *PullRequest) FullName() string {
	return fmt.Sprintf("%s/%s", pr.Owner, pr.Repo)
}

// PullRequestRef identifies a single pull request to review.
type PullRequestRef struct {
	Owner  string `yaml:"owner" json:"owner"`
	Repo   string `yaml:"repo" json:"repo"`
	Number int    `yaml:"pr_number" json:"pr_number"`
}

func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// RepositoryInfo holds repository metadata shown next to a review.
type RepositoryInfo struct {
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	Description   string     `json:"description"`
	Language      string     `json:"language"`
	Stars         int        `json:"stars"`
	Forks         int        `json:"forks"`
	DefaultBranch string     `json:"default_branch"`
	Topics        []string   `json:"topics"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// HistoryKind discriminates the entries returned by GetPullRequestHistory.
type HistoryKind string

const (
	HistoryComment       HistoryKind = "comment"
	HistoryReviewComment HistoryKind = "review_comment"
)

// HistoryEntry is a single discussion item on a pull request. Path and Line
// are only set for review comments.
type HistoryEntry struct {
	Kind      HistoryKind `json:"type"`
	Author    string      `json:"author"`
	Body      string      `json:"body"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
	Path      string      `json:"path,omitempty"`
	Line      int         `json:"line,omitempty"`
}
