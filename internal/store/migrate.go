package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationRecord describes one embedded migration. AppliedAt is nil for
// pending migrations.
type MigrationRecord struct {
	Version   string
	AppliedAt *time.Time
}

// RunMigrations applies pending SQL migrations in order.
// Migrations are tracked in a schema_migrations table.
// There are no down migrations; fix forward only.
//
// TODO(test): RunMigrations requires a live Postgres instance, tested via integration tests only.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	versions, err := migrationVersions()
	if err != nil {
		return err
	}

	for _, version := range versions {
		// Check if already applied.
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
			version,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", version, err)
		}
		if exists {
			continue
		}

		// Read and execute the migration.
		sql, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", version, err)
		}

		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("applying migration %s: %w", version, err)
		}

		// Record the migration.
		if _, err := pool.Exec(ctx,
			"INSERT INTO schema_migrations (version) VALUES ($1)",
			version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", version, err)
		}
	}

	return nil
}

// Status reports every embedded migration together with its applied
// timestamp, pending ones last with a nil timestamp.
func Status(ctx context.Context, pool *pgxpool.Pool) ([]MigrationRecord, error) {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return nil, err
	}

	versions, err := migrationVersions()
	if err != nil {
		return nil, err
	}

	records := make([]MigrationRecord, 0, len(versions))
	for _, version := range versions {
		var appliedAt time.Time
		err := pool.QueryRow(ctx,
			"SELECT applied_at FROM schema_migrations WHERE version = $1",
			version,
		).Scan(&appliedAt)

		switch {
		case errors.Is(err, pgx.ErrNoRows):
			records = append(records, MigrationRecord{Version: version})
		case err != nil:
			return nil, fmt.Errorf("checking migration %s: %w", version, err)
		default:
			records = append(records, MigrationRecord{Version: version, AppliedAt: &appliedAt})
		}
	}

	return records, nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}
	return nil
}

// migrationVersions lists embedded migration filenames in apply order.
func migrationVersions() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort by filename (lexicographic order gives us version order).
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		versions = append(versions, entry.Name())
	}

	return versions, nil
}
