package sqlite

import (
	"context"
	"fmt"

	"github.com/pathfinderhq/pathfinder/pkg/models"
)

func (r *SQLiteRepo) UpsertSchema(ctx context.Context, kind, schemaJSON string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO validation_schemas (kind, schema_json, created, updated) VALUES (?, ?, ?, ?) ON CONFLICT(kind) DO UPDATE SET schema_json = excluded.schema_json, updated = excluded.updated`, kind, schemaJSON, now(), now())
	if err != nil {
		return fmt.Errorf("upsert schema: %w", err)
	}

	return nil
}

func (r *SQLiteRepo) ListSchemas(ctx context.Context) ([]models.Schema, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, kind, schema_json, created, updated FROM validation_schemas`)
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	defer rows.Close()

	var out []models.Schema
	for rows.Next() {
		var s models.Schema
		if err := rows.Scan(&s.ID, &s.Kind, &s.SchemaJSON, &s.Created, &s.Updated); err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, rows.Err()
}
