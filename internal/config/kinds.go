package config

import (
	"fmt"
	"strings"

	"github.com/sevigo/reviewpilot/internal/core"
)

// ProviderKind selects the Git hosting platform.
type ProviderKind string

const (
	ProviderGitHub    ProviderKind = "github"
	ProviderGitLab    ProviderKind = "gitlab"
	ProviderBitbucket ProviderKind = "bitbucket"
)

// AgentKind selects the language model backend driving the review.
type AgentKind string

const (
	AgentOpenAI    AgentKind = "openai"
	AgentAnthropic AgentKind = "anthropic"
	AgentCohere    AgentKind = "cohere"
	AgentLocal     AgentKind = "local"
	AgentGemini    AgentKind = "gemini"
)

// ProviderKinds lists every known provider kind in display order.
var ProviderKinds = []ProviderKind{ProviderGitHub, ProviderGitLab, ProviderBitbucket}

// AgentKinds lists every known agent kind in display order.
var AgentKinds = []AgentKind{AgentOpenAI, AgentAnthropic, AgentCohere, AgentLocal, AgentGemini}

// providerTokenEnv maps each provider to the environment variable holding its token.
var providerTokenEnv = map[ProviderKind]string{
	ProviderGitHub:    "GITHUB_TOKEN",
	ProviderGitLab:    "GITLAB_TOKEN",
	ProviderBitbucket: "BITBUCKET_TOKEN",
}

// agentKeyEnv maps agents that need an API key to its environment variable.
// The local agent talks to an unauthenticated Ollama server.
var agentKeyEnv = map[AgentKind]string{
	AgentOpenAI:    "OPENAI_API_KEY",
	AgentAnthropic: "ANTHROPIC_API_KEY",
	AgentCohere:    "COHERE_API_KEY",
	AgentGemini:    "GEMINI_API_KEY",
}

// ParseProviderKind converts user input into a ProviderKind.
func ParseProviderKind(s string) (ProviderKind, error) {
	kind := ProviderKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := providerTokenEnv[kind]; !ok {
		return "", fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, s)
	}
	return kind, nil
}

// ParseAgentKind converts user input into an AgentKind.
func ParseAgentKind(s string) (AgentKind, error) {
	kind := AgentKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range AgentKinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: unknown agent %q", core.ErrConfiguration, s)
}

// TokenEnv returns the environment variable name holding the provider token.
func (k ProviderKind) TokenEnv() (string, bool) {
	name, ok := providerTokenEnv[k]
	return name, ok
}

// KeyEnv returns the environment variable name holding the agent API key. ok
// is false for agents that need no key.
func (k AgentKind) KeyEnv() (string, bool) {
	name, ok := agentKeyEnv[k]
	return name, ok
}

// CredentialNames lists every credential variable the tool knows about.
func CredentialNames() []string {
	names := make([]string, 0, len(providerTokenEnv)+len(agentKeyEnv))
	for _, k := range ProviderKinds {
		names = append(names, providerTokenEnv[k])
	}
	for _, k := range AgentKinds {
		if name, ok := agentKeyEnv[k]; ok {
			names = append(names, name)
		}
	}
	return names
}
