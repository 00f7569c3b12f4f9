package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/reviewpilot/internal/config"
)

// OpenAIOptions configures an OpenAIClient.
type OpenAIOptions struct {
	BaseURL     string // defaults to config.DefaultOpenAIBaseURL
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

// OpenAIClient calls the OpenAI chat completions endpoint. Every prompt is sent
// as a single user message.
type OpenAIClient struct {
	opts   OpenAIOptions
	logger *slog.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

var errEmptyCompletion = errors.New("openai returned no choices")

func NewOpenAIClient(opts OpenAIOptions, logger *slog.Logger) (*OpenAIClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("openai API key is empty")
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, errors.New("openai model not configured")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultOpenAIBaseURL
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	return &OpenAIClient{opts: opts, logger: logger}, nil
}

// Generate sends prompt and returns the content of the first choice.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.opts.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(slurp))
		var errResp openAIErrorResponse
		if json.Unmarshal(slurp, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return "", fmt.Errorf("openai returned %d: %s", resp.StatusCode, msg)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("openai decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errEmptyCompletion
	}

	c.logger.Debug("openai completion", "model", c.opts.Model, "total_tokens", out.Usage.TotalTokens)
	return out.Choices[0].Message.Content, nil
}
