package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a provider or agent kind is unknown or a
	// configuration value is out of range.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrMissingCredential is returned when a required credential is absent.
	ErrMissingCredential = errors.New("missing credential")
	// ErrUnsupportedProvider is returned for known provider kinds without an implementation.
	ErrUnsupportedProvider = errors.New("provider not implemented")
	// ErrUnsupportedAgent is returned for known agent kinds without an implementation.
	ErrUnsupportedAgent = errors.New("agent not implemented")
	// ErrProviderAPI matches every *ProviderAPIError via errors.Is.
	ErrProviderAPI = errors.New("provider API error")
)

// ProviderAPIError wraps any failure of a hosting platform API.
type ProviderAPIError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("%s API error during %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderAPIError) Unwrap() error {
	return e.Err
}

// Is reports ErrProviderAPI as a match so callers can classify without errors.As.
func (e *ProviderAPIError) Is(target error) bool {
	return target == ErrProviderAPI
}
