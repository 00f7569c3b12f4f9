package config

import (
	"fmt"
	"slices"

	"github.com/sevigo/reviewpilot/internal/core"
)

const (
	DefaultModelName          = "gpt-4"
	DefaultTemperature        = 0.1
	DefaultMaxTokens          = 4000
	DefaultMaxAgentIterations = 15
	DefaultOllamaHost         = "http://localhost:11434"
	DefaultOpenAIBaseURL      = "https://api.openai.com/v1"
)

// ReviewConfiguration selects the provider and agent for a review and tunes
// the model. It is passed by value and never modified after construction.
type ReviewConfiguration struct {
	Provider     ProviderKind `mapstructure:"provider"`
	Agent        AgentKind    `mapstructure:"agent"`
	ModelName    string       `mapstructure:"model"`
	Temperature  float64      `mapstructure:"temperature"`
	MaxTokens    int          `mapstructure:"max_tokens"`
	CustomPrompt string       `mapstructure:"custom_prompt"`

	SecurityAnalysis    bool `mapstructure:"security_analysis"`
	PerformanceAnalysis bool `mapstructure:"performance_analysis"`
	QualityAnalysis     bool `mapstructure:"quality_analysis"`
	Memory              bool `mapstructure:"memory"`
	SimilaritySearch    bool `mapstructure:"similarity_search"`

	// ParallelAnalysis runs the security, performance and quality analyses
	// concurrently. Result bundling is unaffected.
	ParallelAnalysis   bool `mapstructure:"parallel_analysis"`
	MaxAgentIterations int  `mapstructure:"max_agent_iterations"`

	OllamaHost    string `mapstructure:"ollama_host"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	// GitHubBaseURL points the GitHub provider at an Enterprise server. Empty
	// means api.github.com.
	GitHubBaseURL string `mapstructure:"github_base_url"`
}

// DefaultReviewConfiguration returns the configuration used when nothing is overridden.
func DefaultReviewConfiguration() ReviewConfiguration {
	return ReviewConfiguration{
		Provider:            ProviderGitHub,
		Agent:               AgentOpenAI,
		ModelName:           DefaultModelName,
		Temperature:         DefaultTemperature,
		MaxTokens:           DefaultMaxTokens,
		SecurityAnalysis:    true,
		PerformanceAnalysis: true,
		QualityAnalysis:     true,
		Memory:              true,
		SimilaritySearch:    true,
		MaxAgentIterations:  DefaultMaxAgentIterations,
		OllamaHost:          DefaultOllamaHost,
		OpenAIBaseURL:       DefaultOpenAIBaseURL,
	}
}

// Validate checks that both kinds are known and the model parameters are in range.
func (c ReviewConfiguration) Validate() error {
	// Kinds must already be canonical; Load normalizes user input first.
	if _, ok := providerTokenEnv[c.Provider]; !ok {
		return fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, c.Provider)
	}
	if !slices.Contains(AgentKinds, c.Agent) {
		return fmt.Errorf("%w: unknown agent %q", core.ErrConfiguration, c.Agent)
	}
	if c.ModelName == "" {
		return fmt.Errorf("%w: model name must be set", core.ErrConfiguration)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be within [0, 2], got %v", core.ErrConfiguration, c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: max tokens must be positive, got %d", core.ErrConfiguration, c.MaxTokens)
	}
	if c.MaxAgentIterations <= 0 {
		return fmt.Errorf("%w: max agent iterations must be positive, got %d", core.ErrConfiguration, c.MaxAgentIterations)
	}
	return nil
}
