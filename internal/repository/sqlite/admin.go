package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pathfinderhq/pathfinder/pkg/models"
)

func (r *SQLiteRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("admin is nil")
	}

	out, err := r.conn.Exec(ctx, `INSERT INTO admins (name, email, password_hash, created) VALUES (?, ?, ?, ?)`, a.Name, a.Email, a.PasswordHash, now())
	if err != nil {
		return 0, fmt.Errorf("create admin: %w", err)
	}

	return out.LastInsertId()
}

func (r *SQLiteRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created FROM admins WHERE email = ?`, email)
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &a, nil
}
