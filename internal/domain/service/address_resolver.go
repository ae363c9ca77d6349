package service

import (
	"context"
	"fmt"
	"strings"

	"cepcache/internal/domain/entity"
	"cepcache/internal/errors"
)

// ErrNoProviderResolved is matched by every aggregate race failure.
var ErrNoProviderResolved = errors.New("no provider resolved the zipcode")

// Resolution is the winning provider answer of a race.
type Resolution struct {
	Provider string
	Address  *entity.Address
}

// ProviderAttempt records how one provider ended a race that nobody won.
type ProviderAttempt struct {
	Provider string
	Err      error
}

// ResolutionFailure is returned when every provider missed or failed.
type ResolutionFailure struct {
	Zipcode  entity.Zipcode
	Attempts []ProviderAttempt
}

func (e *ResolutionFailure) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("zipcode %s: no providers registered", e.Zipcode)
	}

	parts := make([]string, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", attempt.Provider, attempt.Err))
	}

	return fmt.Sprintf("zipcode %s: %s", e.Zipcode, strings.Join(parts, "; "))
}

func (e *ResolutionFailure) Unwrap() error {
	return ErrNoProviderResolved
}

// AddressResolver races the registered providers for one zipcode.
type AddressResolver interface {
	// Resolve returns the first successful provider answer. When nothing succeeds it returns a
	// *ResolutionFailure; when ctx ends first it returns the context error.
	Resolve(ctx context.Context, zipcode entity.Zipcode) (*Resolution, error)
}

// WriteBackScheduler persists provider-resolved addresses without blocking the caller.
type WriteBackScheduler interface {
	// Schedule queues address for persistence. It never reports persistence failures to the caller.
	// Nothing is scheduled when ctx is already done.
	Schedule(ctx context.Context, address *entity.Address)
}
