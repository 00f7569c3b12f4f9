package llm

import (
	"strings"

	"github.com/sevigo/reviewpilot/internal/core"
)

type qualitySection int

const (
	sectionNone qualitySection = iota
	sectionIssues
	sectionSuggestions
)

const (
	issuesHeader          = "ISSUES:"
	suggestionsHeader     = "SUGGESTIONS:"
	complexityPrefix      = "COMPLEXITY:"
	readabilityPrefix     = "READABILITY:"
	maintainabilityPrefix = "MAINTAINABILITY:"
)

// ParseQualityReport extracts issues, suggestions and the three ratings from a
// quality analysis response. It never fails: text that does not follow the
// requested layout is ignored and missing ratings stay Medium.
func ParseQualityReport(response string) *core.QualityReport {
	report := &core.QualityReport{
		Issues:          []core.Issue{},
		Suggestions:     []string{},
		Complexity:      core.RatingMedium,
		Readability:     core.RatingMedium,
		Maintainability: core.RatingMedium,
	}

	section := sectionNone
	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, issuesHeader):
			section = sectionIssues
		case strings.HasPrefix(line, suggestionsHeader):
			section = sectionSuggestions
		case strings.HasPrefix(line, complexityPrefix):
			report.Complexity = ratingValue(line, report.Complexity)
		case strings.HasPrefix(line, readabilityPrefix):
			report.Readability = ratingValue(line, report.Readability)
		case strings.HasPrefix(line, maintainabilityPrefix):
			report.Maintainability = ratingValue(line, report.Maintainability)
		case strings.HasPrefix(line, "-") && section != sectionNone:
			item := strings.TrimSpace(line[1:])
			if section == sectionIssues {
				report.Issues = append(report.Issues, core.ParseIssue(item))
			} else {
				report.Suggestions = append(report.Suggestions, item)
			}
		}
	}

	return report
}

// ratingValue returns the text after the first colon, or fallback when it is empty.
func ratingValue(line string, fallback core.Rating) core.Rating {
	_, value, _ := strings.Cut(line, ":")
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// SplitFindings turns a free-form analysis response into one finding per
// non-blank line. Lines are trimmed but otherwise kept verbatim.
func SplitFindings(response string) []string {
	findings := []string{}
	for _, line := range strings.Split(response, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			findings = append(findings, line)
		}
	}
	return findings
}
