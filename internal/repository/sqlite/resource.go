package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

const resourceCols = `id, name, type, address, latitude, longitude, phone, hours, description, capacity, eligibility, website, contact_person, requirements, services, is_active, created, updated`

func (r *SQLiteRepo) CreateResource(ctx context.Context, res *models.Resource) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("resource is nil")
	}

	ts := now()
	res.Created = ts
	res.Updated = ts
	out, err := r.conn.Exec(ctx, `INSERT INTO resources (name, type, address, latitude, longitude, phone, hours, description, capacity, eligibility, website, contact_person, requirements, services, is_active, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Name, res.Type, res.Address, res.Latitude, res.Longitude, res.Phone, res.Hours, res.Description, res.Capacity, marshalList(res.Eligibility), res.Website, res.ContactPerson, res.Requirements, marshalList(res.Services), res.IsActive, ts, ts)
	if err != nil {
		return 0, fmt.Errorf("create resource: %w", err)
	}

	return out.LastInsertId()
}

func (r *SQLiteRepo) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+resourceCols+` FROM resources WHERE id = ?`, id)
	res, err := scanResource(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("get resource: %w", err)
	}

	return res, nil
}

func (r *SQLiteRepo) ListResources(ctx context.Context, f repository.ListFilter) ([]models.Resource, error) {
	clampPage(&f)

	where := []string{"is_active = ?"}
	args := []any{activeFlag(f.IncludeInactive)}

	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.Eligibility != "" {
		// eligibility is a JSON array of strings; containment as a quoted
		// element match on the serialized text
		where = append(where, "eligibility LIKE ?")
		args = append(args, `%"`+f.Eligibility+`"%`)
	}
	if f.Search != "" {
		where = append(where, searchClause([]string{"name", "address", "description"}, f.Search, &args))
	}

	q := `SELECT ` + resourceCols + ` FROM resources WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	return collectResources(rows)
}

// UpdateResource replaces every mutable column; created is never touched.
// The bool reports whether a row with that id existed.
func (r *SQLiteRepo) UpdateResource(ctx context.Context, res *models.Resource) (bool, error) {
	if res == nil {
		return false, fmt.Errorf("resource is nil")
	}

	out, err := r.conn.Exec(ctx, `UPDATE resources SET name = ?, type = ?, address = ?, latitude = ?, longitude = ?, phone = ?, hours = ?, description = ?, capacity = ?, eligibility = ?, website = ?, contact_person = ?, requirements = ?, services = ?, is_active = ?, updated = ? WHERE id = ?`,
		res.Name, res.Type, res.Address, res.Latitude, res.Longitude, res.Phone, res.Hours, res.Description, res.Capacity, marshalList(res.Eligibility), res.Website, res.ContactPerson, res.Requirements, marshalList(res.Services), res.IsActive, now(), res.ID)
	if err != nil {
		return false, fmt.Errorf("update resource: %w", err)
	}

	n, err := out.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) DeleteResource(ctx context.Context, id int64) (bool, error) {
	out, err := r.conn.Exec(ctx, `DELETE FROM resources WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete resource: %w", err)
	}

	n, err := out.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) NearbyResources(ctx context.Context, box repository.BoundingBox) ([]models.Resource, error) {
	where := []string{"is_active = 1", "ABS(latitude - ?) <= ?"}
	args := []any{box.Lat, box.LatDelta}
	if box.LngDelta != nil {
		where = append(where, "ABS(longitude - ?) <= ?")
		args = append(args, box.Lng, *box.LngDelta)
	}

	q := `SELECT ` + resourceCols + ` FROM resources WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created DESC, id DESC`
	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("nearby resources: %w", err)
	}
	defer rows.Close()

	return collectResources(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (*models.Resource, error) {
	var res models.Resource
	var phone, hours, desc, capacity, eligibility, website, contact, reqs, services sql.NullString
	if err := row.Scan(&res.ID, &res.Name, &res.Type, &res.Address, &res.Latitude, &res.Longitude, &phone, &hours, &desc, &capacity, &eligibility, &website, &contact, &reqs, &services, &res.IsActive, &res.Created, &res.Updated); err != nil {
		return nil, err
	}

	res.Phone = phone.String
	res.Hours = hours.String
	res.Description = desc.String
	res.Capacity = capacity.String
	res.Eligibility = unmarshalList(eligibility.String)
	res.Website = website.String
	res.ContactPerson = contact.String
	res.Requirements = reqs.String
	res.Services = unmarshalList(services.String)

	return &res, nil
}

func collectResources(rows *sql.Rows) ([]models.Resource, error) {
	var out []models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *res)
	}

	return out, rows.Err()
}
