package impl

import (
	"context"
	"log/slog"

	"cepcache/config"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/entity"
	domainerrors "cepcache/internal/domain/errors"
	"cepcache/internal/domain/repository"
	"cepcache/internal/domain/service"
	"cepcache/internal/errors"
	"cepcache/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

type addressService struct {
	addressRepo repository.AddressRepository
	txManager   repository.TransactionManager
	resolver    service.AddressResolver
	writeBack   service.WriteBackScheduler
	logger      *slog.Logger

	coalesce bool
	flights  singleflight.Group
}

// AddressServiceParams holds dependencies for the address usecase, injected by Fx
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	TxManager   repository.TransactionManager
	Resolver    service.AddressResolver
	WriteBack   service.WriteBackScheduler
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService creates the lookup orchestrator and insert usecase.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		txManager:   params.TxManager,
		resolver:    params.Resolver,
		writeBack:   params.WriteBack,
		logger:      params.Logger,
		coalesce:    params.Config.Resolver.Coalesce,
	}
}

// Lookup reads local storage first. Only a zipcode lookup that misses locally reaches the providers.
func (s *addressService) Lookup(ctx context.Context, filter entity.AddressFilter, page entity.Page) (*usecase.LookupResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	addresses, err := s.addressRepo.FindAddresses(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query stored addresses")
	}

	if len(addresses) > 0 || !filter.HasZipcode() {
		return &usecase.LookupResult{Addresses: addresses, Provider: entity.ProviderLocal}, nil
	}

	zipcode := *filter.Zipcode
	logger.Debug("Zipcode not stored, racing providers", slog.String("zipcode", zipcode.String()))

	resolution, err := s.resolve(ctx, zipcode)
	if err != nil {
		if errors.Is(err, service.ErrNoProviderResolved) {
			logger.Info("Zipcode not resolved by any provider",
				slog.String("zipcode", zipcode.String()),
				slog.String("error", err.Error()),
			)

			return &usecase.LookupResult{Addresses: []*entity.Address{}, Provider: entity.ProviderNone}, nil
		}

		return nil, err
	}

	return &usecase.LookupResult{
		Addresses: []*entity.Address{resolution.Address},
		Provider:  resolution.Provider,
	}, nil
}

// resolve races the providers and schedules the write-back of the winner.
// With coalescing on, concurrent callers for one zipcode share a single race and a single write-back.
func (s *addressService) resolve(ctx context.Context, zipcode entity.Zipcode) (*service.Resolution, error) {
	if !s.coalesce {
		return s.resolveAndSchedule(ctx, zipcode)
	}

	// The shared race and its write-back must not die with whichever caller started it.
	flight := s.flights.DoChan(zipcode.String(), func() (any, error) {
		return s.resolveAndSchedule(context.WithoutCancel(ctx), zipcode)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case result := <-flight:
		if result.Err != nil {
			return nil, result.Err
		}

		return result.Val.(*service.Resolution), nil
	}
}

func (s *addressService) resolveAndSchedule(ctx context.Context, zipcode entity.Zipcode) (*service.Resolution, error) {
	resolution, err := s.resolver.Resolve(ctx, zipcode)
	if err != nil {
		return nil, err
	}

	s.writeBack.Schedule(ctx, resolution.Address)

	return resolution, nil
}

// Insert stores a client-submitted address. Unlike write-back, it never creates the city.
func (s *addressService) Insert(ctx context.Context, input *usecase.InsertAddressInput) (*entity.Address, error) {
	if !input.Zipcode.IsValid() {
		return nil, domainerrors.ErrInvalidZipcode
	}
	if !input.StateAcronym.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown state " + input.StateAcronym.String())
	}

	address := &entity.Address{
		Zipcode:      input.Zipcode,
		Neighborhood: input.Neighborhood,
		Complement:   input.Complement,
		Coordinates:  input.Coordinates,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		state, stateID, err := factory.NewStateRepository().FindStateByAcronym(ctx, input.StateAcronym)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotFound) {
				return domainerrors.ErrStateNotFound
			}

			return errors.Wrap(err, "failed to find state")
		}

		city, cityID, err := factory.NewCityRepository().FindCityByIBGE(ctx, input.CityIBGE)
		if err != nil {
			if errors.Is(err, repository.ErrCityNotFound) {
				return domainerrors.ErrCityNotFound
			}

			return errors.Wrap(err, "failed to find city")
		}

		address.State = *state
		address.City = *city

		return factory.NewAddressRepository().CreateAddress(ctx, address, stateID, cityID)
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Address inserted",
		slog.String("zipcode", address.Zipcode.String()),
		slog.Int("city_ibge", address.City.IBGE),
	)

	return address, nil
}
