package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Issue is a single problem reported by the quality analysis. Path and Line
// are optional and only set when the model prefixed the finding with a
// "file:line" location.
type Issue struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
}

var issueLocationRegex = regexp.MustCompile(`^([^\s:]+\.[A-Za-z0-9]+):(\d+):?\s*(.*)$`)

// ParseIssue builds an Issue from one line of model output. Lines shaped like
// "internal/foo.go:42: message" carry a location; anything else becomes a
// message-only issue.
func ParseIssue(line string) Issue {
	line = strings.TrimSpace(line)
	matches := issueLocationRegex.FindStringSubmatch(line)
	if len(matches) != 4 || strings.TrimSpace(matches[3]) == "" {
		return Issue{Message: line}
	}
	lineNum, err := strconv.Atoi(matches[2])
	if err != nil {
		return Issue{Message: line}
	}
	return Issue{
		Message: strings.TrimSpace(matches[3]),
		Path:    matches[1],
		Line:    lineNum,
	}
}

func (i Issue) String() string {
	switch {
	case i.Path != "" && i.Line > 0:
		return fmt.Sprintf("%s:%d: %s", i.Path, i.Line, i.Message)
	case i.Path != "":
		return fmt.Sprintf("%s: %s", i.Path, i.Message)
	default:
		return i.Message
	}
}

// Rating is the Low / Medium / High scale used by the quality analysis.
type Rating = string

const (
	RatingLow    Rating = "Low"
	RatingMedium Rating = "Medium"
	RatingHigh   Rating = "High"
)

// QualityReport is the parsed result of the code quality analysis.
type QualityReport struct {
	Issues          []Issue  `json:"issues"`
	Suggestions     []string `json:"suggestions"`
	Complexity      Rating   `json:"complexity"`
	Readability     Rating   `json:"readability"`
	Maintainability Rating   `json:"maintainability"`
}

// ReviewResult is the structured output of a single agent review. It is
// created once per review and not modified afterwards.
type ReviewResult struct {
	Summary           string   `json:"summary"`
	Issues            []Issue  `json:"issues"`
	Suggestions       []string `json:"suggestions"`
	SecurityConcerns  []string `json:"security_concerns"`
	PerformanceIssues []string `json:"performance_issues"`
	Complexity        Rating   `json:"complexity"`
	Readability       Rating   `json:"readability"`
	Maintainability   Rating   `json:"maintainability"`
	// QualityScore and ConfidenceScore are heuristics in [0,100].
	QualityScore    float64 `json:"code_quality_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	// ReviewTime is the wall clock duration of the review in seconds.
	ReviewTime float64 `json:"review_time"`
	// TokensUsed is a character based estimate of the summary size.
	TokensUsed int    `json:"tokens_used"`
	Model      string `json:"model_used"`
}

// ReviewBundle is everything produced for one pull request review.
type ReviewBundle struct {
	PullRequest *PullRequest    `json:"pull_request"`
	Repository  *RepositoryInfo `json:"repository"`
	History     []HistoryEntry  `json:"history"`
	Review      *ReviewResult   `json:"review"`
}
