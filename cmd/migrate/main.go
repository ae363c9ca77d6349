package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cepcache/config"
	logs "cepcache/internal/infra/log"
	"cepcache/internal/infra/persistence/migration"
	"cepcache/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - up:      Apply every pending migration
// - down:    Roll back the last N migrations
// - version: Print the applied schema version

func main() {
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Args[1], downCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand string, downCmd *flag.FlagSet, downSteps *int) error {
	var (
		migrator *migration.Migrator
		logger   *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewSQLDB,
			migration.NewMigrator,
		),
		fx.Populate(&migrator, &logger),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to the database")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: shutdown failed: %v\n", err)
		}
	}()

	switch subcommand {
	case "up":
		return migrator.Up(ctx)
	case "down":
		if err := downCmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return migrator.Down(ctx, *downSteps)
	case "version":
		version, dirty, err := migrator.Version(ctx)
		if err != nil {
			return err
		}
		logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", subcommand)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <subcommand> [options]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  up                 Apply every pending migration")
	fmt.Println("  down -steps N      Roll back the last N migrations")
	fmt.Println("  version            Print the applied schema version")
}
