// Command migrate applies the embedded SQL schema to the configured database.
package main

import (
	"context"
	"log/slog"
	"os"

	"placeswipe/config"
	"placeswipe/internal/domain/lifecycle"
	logs "placeswipe/internal/infra/log"
	"placeswipe/internal/infra/persistence/postgres"
	"placeswipe/migrations"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	ctx := context.Background()

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to start migrate", slog.Any("error", err))
		os.Exit(1)
	}

	applied, err := migrations.Apply(ctx, db, logger)

	stopCtx, cancelStop := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStop()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		logger.Warn("Failed to close database", slog.Any("error", stopErr))
	}

	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err), slog.Any("applied", applied))
		os.Exit(1)
	}

	logger.Info("Schema up to date", slog.Int("applied", len(applied)))
}
