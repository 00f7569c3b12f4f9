package config

import (
	"fmt"

	"github.com/sevigo/reviewpilot/internal/core"
)

// Credentials maps credential variable names (GITHUB_TOKEN, OPENAI_API_KEY,
// ...) to their values. It is filled once at the process boundary and
// injected, so core components never read the environment themselves.
type Credentials map[string]string

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadCredentials collects every known credential through lookup. Empty
// values are treated as absent.
func LoadCredentials(lookup LookupFunc) Credentials {
	creds := make(Credentials)
	for _, name := range CredentialNames() {
		if value, ok := lookup(name); ok && value != "" {
			creds[name] = value
		}
	}
	return creds
}

// Require returns the value stored under name or an error wrapping
// core.ErrMissingCredential.
func (c Credentials) Require(name string) (string, error) {
	if value, ok := c[name]; ok && value != "" {
		return value, nil
	}
	return "", fmt.Errorf("%w: %s is not set", core.ErrMissingCredential, name)
}

// ProviderToken resolves the token for the given provider kind.
func (c Credentials) ProviderToken(kind ProviderKind) (string, error) {
	name, ok := kind.TokenEnv()
	if !ok {
		return "", fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, kind)
	}
	return c.Require(name)
}

// AgentKey resolves the API key for the given agent kind. Agents without a
// key return an empty string and no error.
func (c Credentials) AgentKey(kind AgentKind) (string, error) {
	name, ok := kind.KeyEnv()
	if !ok {
		return "", nil
	}
	return c.Require(name)
}

// Mask hides all but the last four characters of a secret.
func Mask(value string) string {
	if value == "" {
		return "Not set"
	}
	if len(value) <= 4 {
		return "***"
	}
	return "***" + value[len(value)-4:]
}
