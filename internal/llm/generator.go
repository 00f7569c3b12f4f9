package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/reviewpilot/internal/config"
	"github.com/sevigo/reviewpilot/internal/core"
)

// Generator is the single text completion call the review agent needs from a
// model backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type modelGenerator struct {
	model   llms.Model
	options []llms.CallOption
}

// FromModel wraps a goframe model. options are passed on every call.
func FromModel(model llms.Model, options ...llms.CallOption) Generator {
	return &modelGenerator{model: model, options: options}
}

func (g *modelGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.model.Call(ctx, prompt, g.options...)
}

// callOptions carries the sampling settings of cfg to goframe backends. The
// stop word ends a ReAct step before the model invents its own observation.
func callOptions(cfg config.ReviewConfiguration) []llms.CallOption {
	return []llms.CallOption{
		llms.WithTemperature(cfg.Temperature),
		llms.WithMaxTokens(cfg.MaxTokens),
		llms.WithStopWords([]string{observationStop}),
	}
}

// NewGenerator builds the backend for cfg.Agent. apiKey is ignored by keyless
// backends. Known agent kinds without a backend return core.ErrUnsupportedAgent.
func NewGenerator(ctx context.Context, cfg config.ReviewConfiguration, apiKey string, logger *slog.Logger) (Generator, error) {
	switch cfg.Agent {
	case config.AgentOpenAI:
		return NewOpenAIClient(OpenAIOptions{
			BaseURL:     cfg.OpenAIBaseURL,
			APIKey:      apiKey,
			Model:       cfg.ModelName,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			HTTPClient:  newModelHTTPClient(),
		}, logger)
	case config.AgentLocal:
		model, err := ollama.New(
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithModel(cfg.ModelName),
			ollama.WithHTTPClient(newModelHTTPClient()),
			ollama.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama model: %w", err)
		}
		return FromModel(model, callOptions(cfg)...), nil
	case config.AgentGemini:
		model, err := gemini.New(ctx,
			gemini.WithModel(cfg.ModelName),
			gemini.WithAPIKey(apiKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini model: %w", err)
		}
		return FromModel(model, callOptions(cfg)...), nil
	case config.AgentAnthropic, config.AgentCohere:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedAgent, cfg.Agent)
	default:
		return nil, fmt.Errorf("%w: unknown agent %q", core.ErrConfiguration, cfg.Agent)
	}
}

func newModelHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}
