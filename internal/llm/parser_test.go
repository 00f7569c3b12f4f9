package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/reviewpilot/internal/core"
)

func TestParseQualityReport(t *testing.T) {
	tests := []struct {
		name                string
		input               string
		wantIssues          []core.Issue
		wantSuggestions     []string
		wantComplexity      core.Rating
		wantReadability     core.Rating
		wantMaintainability core.Rating
	}{
		{
			name: "Indented response",
			input: `
        ISSUES:
        - Missing docstring
        - Unused variable

        SUGGESTIONS:
        - Add type hints
        - Improve variable naming

        COMPLEXITY: Medium
        READABILITY: High
        MAINTAINABILITY: High
        `,
			wantIssues:          []core.Issue{{Message: "Missing docstring"}, {Message: "Unused variable"}},
			wantSuggestions:     []string{"Add type hints", "Improve variable naming"},
			wantComplexity:      "Medium",
			wantReadability:     "High",
			wantMaintainability: "High",
		},
		{
			name:                "Ratings missing default to Medium",
			input:               "ISSUES:\n- one\nSUGGESTIONS:\n- two\n",
			wantIssues:          []core.Issue{{Message: "one"}},
			wantSuggestions:     []string{"two"},
			wantComplexity:      "Medium",
			wantReadability:     "Medium",
			wantMaintainability: "Medium",
		},
		{
			name:                "Dash lines before any section are ignored",
			input:               "- stray\nISSUES:\n- real",
			wantIssues:          []core.Issue{{Message: "real"}},
			wantSuggestions:     []string{},
			wantComplexity:      "Medium",
			wantReadability:     "Medium",
			wantMaintainability: "Medium",
		},
		{
			name:                "Located issue",
			input:               "ISSUES:\n- internal/cache.go:42: map accessed without lock",
			wantIssues:          []core.Issue{{Message: "map accessed without lock", Path: "internal/cache.go", Line: 42}},
			wantSuggestions:     []string{},
			wantComplexity:      "Medium",
			wantReadability:     "Medium",
			wantMaintainability: "Medium",
		},
		{
			name:                "Empty rating keeps default, unknown rating kept verbatim",
			input:               "COMPLEXITY:\nREADABILITY: Excellent\nMAINTAINABILITY:  Low  ",
			wantIssues:          []core.Issue{},
			wantSuggestions:     []string{},
			wantComplexity:      "Medium",
			wantReadability:     "Excellent",
			wantMaintainability: "Low",
		},
		{
			name:                "Free text",
			input:               "The change looks fine to me.",
			wantIssues:          []core.Issue{},
			wantSuggestions:     []string{},
			wantComplexity:      "Medium",
			wantReadability:     "Medium",
			wantMaintainability: "Medium",
		},
		{
			name:                "Empty response",
			input:               "",
			wantIssues:          []core.Issue{},
			wantSuggestions:     []string{},
			wantComplexity:      "Medium",
			wantReadability:     "Medium",
			wantMaintainability: "Medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQualityReport(tt.input)
			assert.Equal(t, tt.wantIssues, got.Issues)
			assert.Equal(t, tt.wantSuggestions, got.Suggestions)
			assert.Equal(t, tt.wantComplexity, got.Complexity)
			assert.Equal(t, tt.wantReadability, got.Readability)
			assert.Equal(t, tt.wantMaintainability, got.Maintainability)
		})
	}
}

func TestSplitFindings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Two lines", "SQL injection vulnerability found\nXSS vulnerability detected", []string{"SQL injection vulnerability found", "XSS vulnerability detected"}},
		{"Blank lines dropped", "\n  Memory leak detected  \n\n\t\nInefficient algorithm found\n", []string{"Memory leak detected", "Inefficient algorithm found"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"Duplicates kept", "same\nsame", []string{"same", "same"}},
		{"Empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFindings(tt.input))
		})
	}
}
