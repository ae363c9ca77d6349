package impl

import (
	"context"
	"log/slog"
	"time"

	"cepcache/config"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"
	"cepcache/internal/errors"

	"go.uber.org/fx"
)

// raceResult is one provider's completion.
type raceResult struct {
	provider string
	address  *entity.Address
	err      error
}

type resolverService struct {
	providers       []service.AddressProvider
	providerTimeout time.Duration
	logger          *slog.Logger
}

// ResolverParams holds dependencies for the resolver, injected by Fx
type ResolverParams struct {
	fx.In

	Providers []service.AddressProvider
	Config    *config.Config
	Logger    *slog.Logger
}

// NewResolverService creates the provider race engine.
func NewResolverService(params ResolverParams) service.AddressResolver {
	return newResolverService(params.Providers, params.Config.Resolver.ProviderTimeout, params.Logger)
}

func newResolverService(providers []service.AddressProvider, providerTimeout time.Duration, logger *slog.Logger) *resolverService {
	return &resolverService{
		providers:       providers,
		providerTimeout: providerTimeout,
		logger:          logger,
	}
}

// Resolve starts every provider at once and returns the first success.
// The remaining calls are cancelled and their answers dropped.
func (s *resolverService) Resolve(ctx context.Context, zipcode entity.Zipcode) (*service.Resolution, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("zipcode", zipcode.String()))

	if len(s.providers) == 0 {
		logger.Warn("No provider available to resolve zipcode")

		return nil, &service.ResolutionFailure{Zipcode: zipcode}
	}

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so losers never block after the race is decided.
	results := make(chan raceResult, len(s.providers))
	for _, p := range s.providers {
		go s.call(raceCtx, p, zipcode, results)
	}

	attempts := make([]service.ProviderAttempt, 0, len(s.providers))
	for range s.providers {
		select {
		case <-ctx.Done():
			logger.Debug("Resolution abandoned by caller", slog.Any("error", ctx.Err()))

			return nil, errors.WithStack(ctx.Err())

		case result := <-results:
			if result.err == nil {
				cancel()
				logger.Info("Zipcode resolved by provider", slog.String("provider", result.provider))

				return &service.Resolution{Provider: result.provider, Address: result.address}, nil
			}

			attempts = append(attempts, service.ProviderAttempt{Provider: result.provider, Err: result.err})
			s.logAttempt(logger, result)
		}
	}

	return nil, &service.ResolutionFailure{Zipcode: zipcode, Attempts: attempts}
}

// call runs one provider under its own deadline and always reports exactly once.
func (s *resolverService) call(ctx context.Context, p service.AddressProvider, zipcode entity.Zipcode, results chan<- raceResult) {
	name := p.Name()
	result := raceResult{provider: name}

	defer func() {
		if r := recover(); r != nil {
			result.address = nil
			result.err = service.NewTransportError(name, 0, errors.Errorf("provider panicked: %v", r))
		}
		results <- result
	}()

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	address, err := p.Resolve(callCtx, zipcode)
	switch {
	case err != nil:
		result.err = err
	case address == nil:
		result.err = service.NewTransportError(name, 0, errors.New("provider returned no address"))
	default:
		result.address = address
	}
}

func (s *resolverService) logAttempt(logger *slog.Logger, result raceResult) {
	attrs := []slog.Attr{slog.String("provider", result.provider)}

	switch {
	case errors.Is(result.err, service.ErrAddressMiss):
		logger.LogAttrs(context.Background(), slog.LevelDebug, "Provider has no address for zipcode", attrs...)
	case errors.Is(result.err, context.DeadlineExceeded):
		attrs = append(attrs,
			slog.Duration("timeout", s.providerTimeout),
			slog.String("error", result.err.Error()),
		)
		logger.LogAttrs(context.Background(), slog.LevelWarn, "Provider timed out", attrs...)
	default:
		attrs = append(attrs, slog.String("error", result.err.Error()))
		logger.LogAttrs(context.Background(), slog.LevelWarn, "Provider failed", attrs...)
	}
}
