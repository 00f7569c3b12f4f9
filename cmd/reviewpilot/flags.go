package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reviewFlagKeys maps review tuning flags onto settings keys.
var reviewFlagKeys = map[string]string{
	"provider":      "review.provider",
	"agent":         "review.agent",
	"model":         "review.model",
	"temperature":   "review.temperature",
	"max-tokens":    "review.max_tokens",
	"custom-prompt": "review.custom_prompt",
	"parallel":      "review.parallel_analysis",
	"output":        "output",
}

// disableFlagKeys are negated switches; setting one turns its key off.
var disableFlagKeys = map[string]string{
	"no-security":          "review.security_analysis",
	"no-performance":       "review.performance_analysis",
	"no-quality":           "review.quality_analysis",
	"no-memory":            "review.memory",
	"no-similarity-search": "review.similarity_search",
}

func addReviewFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("provider", "p", "github", "git hosting provider (github, gitlab, bitbucket)")
	f.StringP("agent", "a", "openai", "LLM agent (openai, anthropic, cohere, local, gemini)")
	f.StringP("model", "m", "gpt-4", "model name")
	f.Float64P("temperature", "t", 0.1, "sampling temperature")
	f.Int("max-tokens", 4000, "maximum tokens per model response")
	f.String("custom-prompt", "", "custom review prompt ({title}, {description}, {changed_files}, {diff} are substituted)")
	f.Bool("parallel", false, "run the security, performance and quality analyses concurrently")
	f.String("output", "text", "report format (text, json)")

	f.Bool("no-security", false, "skip the security analysis")
	f.Bool("no-performance", false, "skip the performance analysis")
	f.Bool("no-quality", false, "skip the code quality analysis")
	f.Bool("no-memory", false, "disable conversation memory")
	f.Bool("no-similarity-search", false, "disable similarity search")
}

// bindReviewFlags attaches the flags of cmd to the shared settings. It runs
// per command so review and batch can declare the same flag names.
func bindReviewFlags(cmd *cobra.Command) error {
	for name, key := range reviewFlagKeys {
		if err := settings.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	for name, key := range disableFlagKeys {
		off, err := cmd.Flags().GetBool(name)
		if err != nil {
			return err
		}
		if off {
			settings.Set(key, false)
		}
	}
	return nil
}
