package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"cepcache/config"
	"cepcache/internal/delivery"
	"cepcache/internal/delivery/api"
	"cepcache/internal/delivery/api/middleware"
	"cepcache/internal/delivery/api/router/handler"
	"cepcache/internal/domain/service"
	"cepcache/internal/infra/auth"
	logs "cepcache/internal/infra/log"
	"cepcache/internal/infra/persistence/migration"
	"cepcache/internal/infra/persistence/postgres"
	"cepcache/internal/infra/provider"
	"cepcache/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migration.RegisterAutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		postgres.NewSQLDB,
		migration.NewMigrator,
		provider.NewHTTPClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewStateRepository,
			postgres.NewCityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			provider.NewRegistry,
			registeredProviders,
			impl.NewResolverService,
			impl.NewWriteBackService,
		),
	)
}

// registeredProviders exposes the adapters that survived registry construction.
func registeredProviders(registry *provider.Registry) []service.AddressProvider {
	return registry.Providers()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				func(db *sql.DB) *sql.DB { return db },
				fx.As(new(handler.Pinger)),
			),
			handler.NewAddressHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
