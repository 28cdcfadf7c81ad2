// Package migrations embeds the SQL schema and applies it in file order.
package migrations

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"placeswipe/internal/errors"

	"gorm.io/gorm"
)

//go:embed *.sql
var files embed.FS

const createVersionTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migration is one embedded SQL file.
type Migration struct {
	Version string // File name without the .sql suffix.
	SQL     string
}

// All returns every embedded migration ordered by version.
func All() ([]Migration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migrations")
	}
	slices.Sort(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration %s", name)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(name, ".sql"),
			SQL:     string(body),
		})
	}

	return migrations, nil
}

// Pending filters out the versions already applied.
func Pending(all []Migration, applied []string) []Migration {
	var pending []Migration
	for _, m := range all {
		if !slices.Contains(applied, m.Version) {
			pending = append(pending, m)
		}
	}

	return pending
}

// Apply runs every pending migration, each in its own transaction together
// with its version record. Returns the versions applied.
func Apply(ctx context.Context, db *gorm.DB, logger *slog.Logger) ([]string, error) {
	db = db.WithContext(ctx)

	if err := db.Exec(createVersionTableSQL).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create schema_migrations")
	}

	var applied []string
	if err := db.Raw("SELECT version FROM schema_migrations").Scan(&applied).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read applied migrations")
	}

	all, err := All()
	if err != nil {
		return nil, err
	}

	var done []string
	for _, m := range Pending(all, applied) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.SQL).Error; err != nil {
				return errors.Wrapf(err, "failed to apply migration %s", m.Version)
			}

			return errors.Wrap(
				tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version).Error,
				"failed to record migration",
			)
		})
		if err != nil {
			return done, err
		}

		logger.Info("Migration applied", slog.String("version", m.Version))
		done = append(done, m.Version)
	}

	return done, nil
}
