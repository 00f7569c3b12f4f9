package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
)

func sampleBundle() *core.ReviewBundle {
	return &core.ReviewBundle{
		PullRequest: &core.PullRequest{
			Number:       42,
			Title:        "Add retry budget",
			Owner:        "octo",
			Repo:         "hello",
			BaseBranch:   "main",
			HeadBranch:   "retry",
			ChangedFiles: []string{"retry.go"},
			Labels:       []string{},
			Assignees:    []string{},
		},
		Repository: &core.RepositoryInfo{Name: "hello", Language: "Go", Stars: 3, Topics: []string{}},
		Review: &core.ReviewResult{
			Summary:           "Looks reasonable overall.",
			Issues:            []core.Issue{{Message: "unchecked error", Path: "retry.go", Line: 12}},
			Suggestions:       []string{"add a test"},
			SecurityConcerns:  []string{},
			PerformanceIssues: []string{"allocation in hot loop"},
			Complexity:        core.RatingLow,
			Readability:       core.RatingHigh,
			Maintainability:   core.RatingMedium,
			QualityScore:      70,
			ConfidenceScore:   30,
			Model:             "gpt-4",
		},
	}
}

func withoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestPrintBundle_Text(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	require.NoError(t, newReporter(&buf, "text").printBundle(sampleBundle()))

	out := buf.String()
	assert.Contains(t, out, "#42 Add retry budget")
	assert.Contains(t, out, "Looks reasonable overall.")
	assert.Contains(t, out, "70.0/100")
	assert.Contains(t, out, "retry.go:12: unchecked error")
	assert.Contains(t, out, "PERFORMANCE ISSUES (1)")
	assert.NotContains(t, out, "SECURITY CONCERNS")
	assert.NotContains(t, out, "No issues found")
}

func TestPrintBundle_NoFindings(t *testing.T) {
	withoutColor(t)

	b := sampleBundle()
	b.Review.Issues = nil
	b.Review.PerformanceIssues = nil

	var buf bytes.Buffer
	require.NoError(t, newReporter(&buf, "text").printBundle(b))
	assert.Contains(t, buf.String(), "No issues found!")
}

func TestPrintBundles_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := newReporter(&buf, "json")
	r.printHeader(&config.Settings{Review: config.DefaultReviewConfiguration(), Output: "json"}, "octo/hello#42")
	require.NoError(t, r.printBundles([]*core.ReviewBundle{sampleBundle()}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	require.Len(t, decoded, 1)

	review := decoded[0]["review"].(map[string]any)
	assert.Equal(t, 70.0, review["code_quality_score"])
	assert.Equal(t, "gpt-4", review["model_used"])
}

func TestPrintCredentials_Masked(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	newReporter(&buf, "text").printCredentials(config.Credentials{"GITHUB_TOKEN": "ghp_abcdef1234"})

	out := buf.String()
	assert.Contains(t, out, "***1234")
	assert.NotContains(t, out, "ghp_abcdef")
	assert.Contains(t, out, "Not set")
}
