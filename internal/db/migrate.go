package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Migrate applies the embedded SQL migrations and seeds the validation
// schemas. It creates a `schema_migrations` table to track applied migrations
// and applies any SQL files in `db/migrations/` that have not yet been
// recorded. Seed schemas are upserted so re-running is safe.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS, seedFS embed.FS) error {
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// filename without extension is the migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	// seed validation schemas: every seed/*.json file becomes a row keyed by
	// its base name (resource.json -> kind "resource")
	seeds, err := fs.ReadDir(seedFS, "seed")
	if err != nil {
		// seeds are optional
		return nil
	}
	for _, e := range seeds {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		kind := strings.TrimSuffix(e.Name(), ".json")
		b, err := fs.ReadFile(seedFS, path.Join("seed", e.Name()))
		if err != nil {
			return fmt.Errorf("read seed %s: %w", e.Name(), err)
		}
		if _, err := d.Exec(ctx, `INSERT INTO validation_schemas (kind, schema_json, created, updated) VALUES (?, ?, strftime('%s','now'), strftime('%s','now')) ON CONFLICT(kind) DO UPDATE SET schema_json = excluded.schema_json, updated = excluded.updated`, kind, string(b)); err != nil {
			return fmt.Errorf("seed schema %s: %w", kind, err)
		}
	}

	return nil
}
