// Package provider contains the adapters for the external zipcode services and the registry
// that decides, once at startup, which of them take part in resolution races.
package provider

import (
	"log/slog"
	"net/http"

	"cepcache/config"
	"cepcache/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Factory builds one provider adapter.
type Factory func() (service.AddressProvider, error)

// Registry is the immutable set of providers raced on a local miss.
type Registry struct {
	providers []service.AddressProvider
}

// Providers returns the registered adapters in registration order.
func (r *Registry) Providers() []service.AddressProvider {
	providers := make([]service.AddressProvider, len(r.providers))
	copy(providers, r.providers)

	return providers
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.providers)
}

// RegistryParams holds dependencies for the Registry, injected by Fx
type RegistryParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// NewRegistry builds the registry from the providers section of the configuration.
func NewRegistry(params RegistryParams) (*Registry, error) {
	cfg := params.Config.Providers

	var factories []Factory

	if cfg.ViaCep != nil && cfg.ViaCep.Enabled {
		factories = append(factories, func() (service.AddressProvider, error) {
			return NewViaCepProvider(cfg.ViaCep.BaseURL, params.HTTPClient)
		})
	}

	if cfg.CepAberto != nil && cfg.CepAberto.Enabled {
		factories = append(factories, func() (service.AddressProvider, error) {
			p, err := NewCepAbertoProvider(cfg.CepAberto.BaseURL, cfg.CepAberto.Token, params.HTTPClient)
			if err != nil {
				return nil, err
			}

			return WithRateLimit(p, cfg.CepAberto.RateLimit, cfg.CepAberto.Burst), nil
		})
	}

	return BuildRegistry(params.Logger, factories...)
}

// BuildRegistry runs the factories in order. Adapters failing with a configuration error are
// logged and left out; any other construction error aborts startup.
func BuildRegistry(logger *slog.Logger, factories ...Factory) (*Registry, error) {
	registry := &Registry{}

	for _, factory := range factories {
		p, err := factory()
		if err != nil {
			var cfgErr *service.ConfigurationError
			if errors.As(err, &cfgErr) {
				logger.Warn("Provider disabled by configuration error",
					slog.String("provider", cfgErr.Provider),
					slog.String("reason", cfgErr.Reason),
				)

				continue
			}

			return nil, errors.Wrap(err, "failed to build provider")
		}

		registry.providers = append(registry.providers, p)
		logger.Info("Provider registered", slog.String("provider", p.Name()))
	}

	if len(registry.providers) == 0 {
		logger.Warn("No provider registered, local misses will not be resolved")
	}

	return registry, nil
}
