// Package config loads application settings and defines the review
// configuration shared by the orchestrator, providers and agents.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/reviewpilot/internal/logger"
)

// EnvPrefix is prepended to every settings key read from the environment,
// e.g. REVIEWPILOT_REVIEW_MODEL.
const EnvPrefix = "REVIEWPILOT"

// Settings holds the application's configuration values.
type Settings struct {
	Logging logger.Config       `mapstructure:"logging"`
	Review  ReviewConfiguration `mapstructure:"review"`
	// Output selects the report format: "text" or "json".
	Output string `mapstructure:"output"`
}

// SetDefaults registers the default value of every settings key on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultReviewConfiguration()

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "tint")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("output", "text")

	v.SetDefault("review.provider", string(d.Provider))
	v.SetDefault("review.agent", string(d.Agent))
	v.SetDefault("review.model", d.ModelName)
	v.SetDefault("review.temperature", d.Temperature)
	v.SetDefault("review.max_tokens", d.MaxTokens)
	v.SetDefault("review.custom_prompt", "")
	v.SetDefault("review.security_analysis", d.SecurityAnalysis)
	v.SetDefault("review.performance_analysis", d.PerformanceAnalysis)
	v.SetDefault("review.quality_analysis", d.QualityAnalysis)
	v.SetDefault("review.memory", d.Memory)
	v.SetDefault("review.similarity_search", d.SimilaritySearch)
	v.SetDefault("review.parallel_analysis", d.ParallelAnalysis)
	v.SetDefault("review.max_agent_iterations", d.MaxAgentIterations)
	v.SetDefault("review.ollama_host", d.OllamaHost)
	v.SetDefault("review.openai_base_url", d.OpenAIBaseURL)
	v.SetDefault("review.github_base_url", "")
}

// Load reads settings from defaults, an optional config file, REVIEWPILOT_*
// environment variables and any flags already bound to v, then validates the
// review configuration. A missing config file is not an error unless it was
// named explicitly with SetConfigFile.
func Load(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	provider, err := ParseProviderKind(string(s.Review.Provider))
	if err != nil {
		return nil, err
	}
	agent, err := ParseAgentKind(string(s.Review.Agent))
	if err != nil {
		return nil, err
	}
	s.Review.Provider = provider
	s.Review.Agent = agent

	switch s.Output {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected text or json)", s.Output)
	}

	if err := s.Review.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
