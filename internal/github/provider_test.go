package github_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	gh "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/reviewpilot/internal/core"
	"github.com/sevigo/reviewpilot/internal/github"
	"github.com/sevigo/reviewpilot/mocks"
)

func TestProvider_FetchPullRequestDetails(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		mockSetup func(c *mocks.MockClient)
		check     func(t *testing.T, pr *core.PullRequest, err error)
	}{
		{
			name: "Diff is the first file's patch",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().GetPullRequest(gomock.Any(), "octo", "hello", 7).Return(&gh.PullRequest{
					Title:     gh.Ptr("Add cache"),
					Body:      gh.Ptr("Adds an LRU cache"),
					Number:    gh.Ptr(7),
					Base:      &gh.PullRequestBranch{Ref: gh.Ptr("main")},
					Head:      &gh.PullRequestBranch{Ref: gh.Ptr("feature/cache")},
					User:      &gh.User{Login: gh.Ptr("alice")},
					CreatedAt: &gh.Timestamp{Time: created},
					Labels:    []*gh.Label{{Name: gh.Ptr("enhancement")}},
					Assignees: []*gh.User{{Login: gh.Ptr("bob")}},
				}, nil)
				c.EXPECT().GetChangedFiles(gomock.Any(), "octo", "hello", 7).Return([]github.ChangedFile{
					{Filename: "cache.go", Patch: "@@ -0,0 +1 @@\n+package cache"},
					{Filename: "cache_test.go", Patch: "@@ -0,0 +1 @@\n+package cache_test"},
				}, nil)
			},
			check: func(t *testing.T, pr *core.PullRequest, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Add cache", pr.Title)
				assert.Equal(t, "Adds an LRU cache", pr.Description)
				assert.Equal(t, []string{"cache.go", "cache_test.go"}, pr.ChangedFiles)
				assert.Equal(t, "@@ -0,0 +1 @@\n+package cache", pr.Diff)
				assert.Equal(t, "main", pr.BaseBranch)
				assert.Equal(t, "feature/cache", pr.HeadBranch)
				assert.Equal(t, "alice", pr.Author)
				assert.Equal(t, []string{"enhancement"}, pr.Labels)
				assert.Equal(t, []string{"bob"}, pr.Assignees)
				require.NotNil(t, pr.CreatedAt)
				assert.True(t, created.Equal(*pr.CreatedAt))
				assert.Nil(t, pr.UpdatedAt)
				assert.Equal(t, "octo/hello", pr.FullName())
			},
		},
		{
			name: "No changed files gives empty diff",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().GetPullRequest(gomock.Any(), "octo", "hello", 7).Return(&gh.PullRequest{Number: gh.Ptr(7)}, nil)
				c.EXPECT().GetChangedFiles(gomock.Any(), "octo", "hello", 7).Return(nil, nil)
			},
			check: func(t *testing.T, pr *core.PullRequest, err error) {
				require.NoError(t, err)
				assert.Empty(t, pr.Diff)
				assert.Empty(t, pr.ChangedFiles)
			},
		},
		{
			name: "Not found is wrapped",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().GetPullRequest(gomock.Any(), "octo", "hello", 7).Return(nil, errors.New("404 Not Found"))
			},
			check: func(t *testing.T, pr *core.PullRequest, err error) {
				assert.Nil(t, pr)
				assert.ErrorIs(t, err, core.ErrProviderAPI)
				var apiErr *core.ProviderAPIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "GitHub", apiErr.Provider)
				assert.Contains(t, err.Error(), "404 Not Found")
			},
		},
		{
			name: "File listing failure is wrapped",
			mockSetup: func(c *mocks.MockClient) {
				c.EXPECT().GetPullRequest(gomock.Any(), "octo", "hello", 7).Return(&gh.PullRequest{}, nil)
				c.EXPECT().GetChangedFiles(gomock.Any(), "octo", "hello", 7).Return(nil, errors.New("401 Bad credentials"))
			},
			check: func(t *testing.T, pr *core.PullRequest, err error) {
				assert.Nil(t, pr)
				assert.ErrorIs(t, err, core.ErrProviderAPI)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tc.mockSetup(client)

			p := github.NewProvider(client, slog.Default())
			pr, err := p.FetchPullRequestDetails(context.Background(), "octo", "hello", 7)
			tc.check(t, pr, err)
		})
	}
}

func TestProvider_GetRepositoryInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetRepository(gomock.Any(), "octo", "hello").Return(&gh.Repository{
		Name:            gh.Ptr("hello"),
		FullName:        gh.Ptr("octo/hello"),
		Language:        gh.Ptr("Go"),
		StargazersCount: gh.Ptr(42),
		ForksCount:      gh.Ptr(3),
		DefaultBranch:   gh.Ptr("main"),
		Topics:          []string{"cli", "review"},
	}, nil)

	info, err := github.NewProvider(client, slog.Default()).GetRepositoryInfo(context.Background(), "octo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "octo/hello", info.FullName)
	assert.Equal(t, "Go", info.Language)
	assert.Equal(t, 42, info.Stars)
	assert.Equal(t, 3, info.Forks)
	assert.Equal(t, "main", info.DefaultBranch)
	assert.Equal(t, []string{"cli", "review"}, info.Topics)

	client.EXPECT().GetRepository(gomock.Any(), "octo", "gone").Return(nil, errors.New("404"))
	_, err = github.NewProvider(client, slog.Default()).GetRepositoryInfo(context.Background(), "octo", "gone")
	assert.ErrorIs(t, err, core.ErrProviderAPI)
}

func TestProvider_GetPullRequestHistory(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListIssueComments(gomock.Any(), "octo", "hello", 3).Return([]*gh.IssueComment{
		{User: &gh.User{Login: gh.Ptr("alice")}, Body: gh.Ptr("second in time"), CreatedAt: &gh.Timestamp{Time: late}},
		{User: &gh.User{Login: gh.Ptr("bob")}, Body: gh.Ptr("lgtm"), CreatedAt: &gh.Timestamp{Time: late}},
	}, nil)
	client.EXPECT().ListReviewComments(gomock.Any(), "octo", "hello", 3).Return([]*gh.PullRequestComment{
		{
			User:      &gh.User{Login: gh.Ptr("carol")},
			Body:      gh.Ptr("first in time"),
			CreatedAt: &gh.Timestamp{Time: early},
			Path:      gh.Ptr("main.go"),
			Line:      gh.Ptr(12),
		},
	}, nil)

	history, err := github.NewProvider(client, slog.Default()).GetPullRequestHistory(context.Background(), "octo", "hello", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Groups are concatenated, not merged by timestamp.
	assert.Equal(t, core.HistoryComment, history[0].Kind)
	assert.Equal(t, "alice", history[0].Author)
	assert.Equal(t, core.HistoryComment, history[1].Kind)
	assert.Equal(t, "lgtm", history[1].Body)
	assert.Equal(t, core.HistoryReviewComment, history[2].Kind)
	assert.Equal(t, "main.go", history[2].Path)
	assert.Equal(t, 12, history[2].Line)
	assert.Empty(t, history[0].Path)
}

func TestProvider_GetPullRequestHistory_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListIssueComments(gomock.Any(), "octo", "hello", 3).Return(nil, nil)
	client.EXPECT().ListReviewComments(gomock.Any(), "octo", "hello", 3).Return(nil, errors.New("403 rate limit exceeded"))

	history, err := github.NewProvider(client, slog.Default()).GetPullRequestHistory(context.Background(), "octo", "hello", 3)
	assert.Nil(t, history)
	assert.ErrorIs(t, err, core.ErrProviderAPI)
}
