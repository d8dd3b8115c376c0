package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"fyyur/internal/lib/logger/sl"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockID keys the session advisory lock that serialises migration runs
// across instances starting at the same time.
const migrationLockID int64 = 4_318_220_917

// Migrate applies the embedded schema migrations that have not been applied yet.
func (s *Storage) Migrate(ctx context.Context, log *slog.Logger) error {
	return runMigrations(ctx, s.db.DB, migrationsFS, "migrations", log)
}

type migrationFile struct {
	version int
	name    string
	path    string
}

// runMigrations applies every NNNNNN_name.up.sql file under dir in version order,
// skipping versions already recorded in schema_migrations. The whole run holds an
// advisory lock on a single connection.
func runMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir string, log *slog.Logger) error {
	const op = "storage.postgres.runMigrations"

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to get connection: %w", op, err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return fmt.Errorf("%s: failed to acquire migration lock: %w", op, err)
	}
	defer func() {
		// The lock belongs to the session, so release it even if ctx is done.
		if _, err := conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, migrationLockID); err != nil {
			log.Error("failed to release migration lock", sl.Err(err))
		}
	}()

	if err = ensureMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("%s: failed to create migrations table: %w", op, err)
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return fmt.Errorf("%s: failed to get applied versions: %w", op, err)
	}

	migrations, err := collectMigrations(fsys, dir)
	if err != nil {
		return fmt.Errorf("%s: failed to collect migrations: %w", op, err)
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}

		if err = applyMigration(ctx, conn, fsys, m); err != nil {
			return fmt.Errorf("%s: migration %06d: %w", op, m.version, err)
		}

		log.Info("migration applied", slog.Int("version", m.version), slog.String("name", m.name))
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)

	return err
}

func appliedVersions(ctx context.Context, conn *sql.Conn) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err = rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}

	return applied, rows.Err()
}

func collectMigrations(fsys fs.FS, dir string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var migrations []migrationFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) < 2 {
			continue
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}

		migrations = append(migrations, migrationFile{
			version: version,
			name:    strings.TrimSuffix(parts[1], ".up.sql"),
			path:    dir + "/" + entry.Name(),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})

	return migrations, nil
}

func applyMigration(ctx context.Context, conn *sql.Conn, fsys fs.FS, m migrationFile) error {
	content, err := fs.ReadFile(fsys, m.path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	return tx.Commit()
}
