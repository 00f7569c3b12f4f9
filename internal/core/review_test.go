package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIssue(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Issue
	}{
		{
			name: "Message only",
			line: "Missing docstring",
			want: Issue{Message: "Missing docstring"},
		},
		{
			name: "Located issue",
			line: "internal/api/handler.go:42: error is ignored",
			want: Issue{Message: "error is ignored", Path: "internal/api/handler.go", Line: 42},
		},
		{
			name: "Located issue without trailing colon",
			line: "main.py:7 unused import",
			want: Issue{Message: "unused import", Path: "main.py", Line: 7},
		},
		{
			name: "Location without message stays plain",
			line: "main.go:12",
			want: Issue{Message: "main.go:12"},
		},
		{
			name: "Colon in prose is not a location",
			line: "Note: variable naming is inconsistent",
			want: Issue{Message: "Note: variable naming is inconsistent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIssue(tt.line))
		})
	}
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "a.go:3: bad", Issue{Message: "bad", Path: "a.go", Line: 3}.String())
	assert.Equal(t, "a.go: bad", Issue{Message: "bad", Path: "a.go"}.String())
	assert.Equal(t, "bad", Issue{Message: "bad"}.String())
}

func TestProviderAPIError(t *testing.T) {
	cause := errors.New("404 Not Found")
	err := fmt.Errorf("fetch failed: %w", &ProviderAPIError{Provider: "github", Op: "get pull request", Err: cause})

	assert.ErrorIs(t, err, ErrProviderAPI)
	assert.ErrorIs(t, err, cause)

	var apiErr *ProviderAPIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "github", apiErr.Provider)
	assert.Contains(t, err.Error(), "github API error during get pull request")
}

func TestPullRequestRef(t *testing.T) {
	ref := PullRequestRef{Owner: "octo", Repo: "hello", Number: 9}
	assert.Equal(t, "octo/hello#9", ref.String())

	pr := &PullRequest{Owner: "octo", Repo: "hello"}
	assert.Equal(t, "octo/hello", pr.FullName())
}
