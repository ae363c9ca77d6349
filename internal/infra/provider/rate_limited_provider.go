package provider

import (
	"context"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// rateLimitedProvider holds calls to next until the account quota allows them.
type rateLimitedProvider struct {
	next    service.AddressProvider
	limiter *rate.Limiter
}

// WithRateLimit wraps next with a token bucket. A non-positive limit returns next unchanged.
func WithRateLimit(next service.AddressProvider, perSecond float64, burst int) service.AddressProvider {
	if perSecond <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}

	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (p *rateLimitedProvider) Name() string {
	return p.next.Name()
}

func (p *rateLimitedProvider) Resolve(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, service.NewTransportError(p.next.Name(), 0, errors.Wrap(err, "rate limit wait"))
	}

	return p.next.Resolve(ctx, zipcode)
}
