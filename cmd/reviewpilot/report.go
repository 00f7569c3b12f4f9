package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fatih/color"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

const reportWidth = 60

type reporter struct {
	w      io.Writer
	format string
}

func newReporter(w io.Writer, format string) *reporter {
	return &reporter{w: w, format: format}
}

func (r *reporter) jsonOutput() bool {
	return r.format == "json"
}

// printHeader shows the run configuration. JSON output stays machine readable,
// so nothing is printed in that mode.
func (r *reporter) printHeader(s *config.Settings, target string) {
	if r.jsonOutput() {
		return
	}
	titleColor.Fprintln(r.w, "🚀 reviewpilot - PR Review")
	dimColor.Fprintf(r.w, "   Target: %s\n", target)
	r.printSettings(s)
}

func (r *reporter) printSettings(s *config.Settings) {
	c := s.Review
	r.section(titleColor, "⚙️  CONFIGURATION")
	r.row("Provider", string(c.Provider))
	r.row("Agent", string(c.Agent))
	r.row("Model", c.ModelName)
	r.row("Temperature", fmt.Sprintf("%.2f", c.Temperature))
	r.row("Max tokens", fmt.Sprintf("%d", c.MaxTokens))
	r.row("Security", onOff(c.SecurityAnalysis))
	r.row("Performance", onOff(c.PerformanceAnalysis))
	r.row("Quality", onOff(c.QualityAnalysis))
	r.row("Memory", onOff(c.Memory))
	r.row("Similarity search", onOff(c.SimilaritySearch))
	r.row("Parallel", onOff(c.ParallelAnalysis))
	if c.CustomPrompt != "" {
		r.row("Custom prompt", "yes")
	}
	r.row("Output", s.Output)
}

func (r *reporter) printCredentials(creds config.Credentials) {
	r.section(titleColor, "🔑 CREDENTIALS")
	for _, name := range config.CredentialNames() {
		value, ok := creds[name]
		if !ok {
			r.row(name, dimColor.Sprint(config.Mask("")))
			continue
		}
		r.row(name, successColor.Sprint(config.Mask(value)))
	}
}

func (r *reporter) printBundles(bundles []*core.ReviewBundle) error {
	if r.jsonOutput() {
		return r.encode(bundles)
	}
	for _, b := range bundles {
		if err := r.printBundle(b); err != nil {
			return err
		}
	}
	return nil
}

func (r *reporter) printBundle(b *core.ReviewBundle) error {
	if r.jsonOutput() {
		return r.encode(b)
	}

	pr, repo, review := b.PullRequest, b.Repository, b.Review

	r.section(titleColor, "📌 PULL REQUEST")
	boldColor.Fprintf(r.w, "#%d %s\n", pr.Number, pr.Title)
	dimColor.Fprintf(r.w, "   %s  %s ← %s", pr.FullName(), pr.BaseBranch, pr.HeadBranch)
	if pr.Author != "" {
		dimColor.Fprintf(r.w, "  by %s", pr.Author)
	}
	fmt.Fprintln(r.w)
	if repo != nil && repo.Language != "" {
		dimColor.Fprintf(r.w, "   %s · ★ %d · %d forks\n", repo.Language, repo.Stars, repo.Forks)
	}
	dimColor.Fprintf(r.w, "   %d changed files, %d history entries\n", len(pr.ChangedFiles), len(b.History))

	r.section(titleColor, "📋 REVIEW SUMMARY")
	fmt.Fprintln(r.w, renderMarkdown(review.Summary))

	r.section(titleColor, "📊 METRICS")
	r.row("Quality score", fmt.Sprintf("%.1f/100", review.QualityScore))
	r.row("Confidence", fmt.Sprintf("%.1f/100", review.ConfidenceScore))
	r.row("Complexity", review.Complexity)
	r.row("Readability", review.Readability)
	r.row("Maintainability", review.Maintainability)
	r.row("Review time", fmt.Sprintf("%.2fs", review.ReviewTime))
	r.row("Tokens (est.)", fmt.Sprintf("%d", review.TokensUsed))
	r.row("Model", review.Model)

	issues := make([]string, len(review.Issues))
	for i, issue := range review.Issues {
		issues[i] = issue.String()
	}
	r.list(warnColor, "🐛 ISSUES", issues)
	r.list(infoColor, "💡 SUGGESTIONS", review.Suggestions)
	r.list(errorColor, "🔒 SECURITY CONCERNS", review.SecurityConcerns)
	r.list(warnColor, "⚡ PERFORMANCE ISSUES", review.PerformanceIssues)

	if len(issues)+len(review.SecurityConcerns)+len(review.PerformanceIssues) == 0 {
		fmt.Fprintln(r.w)
		successColor.Fprintln(r.w, "✅ No issues found!")
	}
	fmt.Fprintln(r.w)
	return nil
}

func (r *reporter) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *reporter) section(c *color.Color, title string) {
	fmt.Fprintln(r.w)
	c.Fprintln(r.w, strings.Repeat("═", reportWidth))
	c.Fprintln(r.w, title)
	c.Fprintln(r.w, strings.Repeat("═", reportWidth))
}

func (r *reporter) row(label, value string) {
	dimColor.Fprintf(r.w, "   %-18s", label)
	infoColor.Fprintln(r.w, value)
}

func (r *reporter) list(c *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	c.Fprintln(r.w, strings.Repeat("─", reportWidth))
	c.Fprintf(r.w, "%s (%d)\n", title, len(items))
	c.Fprintln(r.w, strings.Repeat("─", reportWidth))
	for _, item := range items {
		infoColor.Fprintf(r.w, " • %s\n", item)
	}
}

// renderMarkdown renders model output for the terminal and falls back to the
// raw text when glamour fails.
func renderMarkdown(text string) string {
	style := styles.DarkStyle
	if color.NoColor {
		style = styles.NoTTYStyle
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(reportWidth+20),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
