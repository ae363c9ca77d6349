package service

import (
	"context"
	"fmt"

	"cepcache/internal/domain/entity"
	"cepcache/internal/errors"
)

// ErrAddressMiss is returned by a provider that answered but has no address for the zipcode.
// It is an expected outcome, not a failure of the provider.
var ErrAddressMiss = errors.New("provider has no address for zipcode")

// AddressProvider wraps one external zipcode lookup service.
// Implementations convert the native payload into the canonical entity.Address and never
// write to local storage.
type AddressProvider interface {
	// Name identifies the provider in lookup results and logs.
	Name() string

	// Resolve looks up zipcode. It returns ErrAddressMiss when the provider reports the
	// zipcode unknown, or a *TransportError when the call or its payload is unusable.
	Resolve(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error)
}

// TransportError is a hard provider failure: network error, non-2xx status or an undecodable payload.
type TransportError struct {
	Provider   string
	StatusCode int // Zero when no HTTP response was received. 2xx means the payload was unusable.
	Err        error
}

// NewTransportError builds a TransportError for provider.
func NewTransportError(provider string, statusCode int, err error) *TransportError {
	return &TransportError{Provider: provider, StatusCode: statusCode, Err: err}
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	case e.StatusCode >= 200 && e.StatusCode < 300:
		return fmt.Sprintf("%s: invalid payload: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConfigurationError means a provider cannot be constructed, e.g. a required credential is absent.
type ConfigurationError struct {
	Provider string
	Reason   string
}

// NewConfigurationError builds a ConfigurationError for provider.
func NewConfigurationError(provider, reason string) *ConfigurationError {
	return &ConfigurationError{Provider: provider, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Provider, e.Reason)
}
