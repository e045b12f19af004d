package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
)

// MigrateUp applies every pending embedded migration and logs each one.
func MigrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer m.Close() //nolint:errcheck

	results, err := m.Up(ctx)
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("took", r.Duration),
		)
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if len(results) == 0 {
		logger.Info("database schema is up to date")
	}
	return nil
}
