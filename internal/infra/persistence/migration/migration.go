// Package migration applies the embedded schema and reference data with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"cepcache/config"
	"cepcache/internal/domain/lifecycle"
	"cepcache/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
)

const migrationsTable = "schema_migrations"

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator runs schema migrations over a dedicated connection of the pool.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator is the constructor for Migrator.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mg *migrate.Migrate) error {
		return mg.Up()
	})
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	return m.run(ctx, func(mg *migrate.Migrate) error {
		return mg.Steps(-steps)
	})
}

// Version reports the applied version and whether the last run left the schema dirty.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = m.run(ctx, func(mg *migrate.Migrate) error {
		var verr error
		version, dirty, verr = mg.Version()

		return verr
	})

	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, fn func(mg *migrate.Migrate) error) error {
	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	// Closing the driver releases conn back to the pool without closing the pool.
	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	mg.Log = &migrateLogger{logger: m.logger}
	defer func() {
		if srcErr, dbErr := mg.Close(); srcErr != nil || dbErr != nil {
			m.logger.Warn("Failed to close migrator",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()

	if err := fn(mg); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("Schema is up to date")

			return nil
		}

		return errors.Wrap(err, "migration failed")
	}

	return nil
}

// migrateLogger forwards golang-migrate output to slog.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Info("Migration", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *migrateLogger) Verbose() bool {
	return false
}

// AutoMigrateParams holds dependencies for RegisterAutoMigrate, injected by Fx.
type AutoMigrateParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Migrator *Migrator
	Logger   *slog.Logger
}

// RegisterAutoMigrate applies pending migrations on start when database.autoMigrate is set.
func RegisterAutoMigrate(params AutoMigrateParams) {
	if params.Config.Database == nil || !params.Config.Database.AutoMigrate {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Applying database migrations")

			return params.Migrator.Up(ctx)
		},
	})
}
