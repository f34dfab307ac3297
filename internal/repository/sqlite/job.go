package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

const jobCols = `id, title, company, description, requirements, location, latitude, longitude, salary, employment_type, posted_date, contact_email, contact_phone, website, source, source_id, is_remote, is_active, created, updated`

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	ts := now()
	j.PostedDate = ts
	j.Created = ts
	j.Updated = ts
	out, err := r.conn.Exec(ctx, `INSERT INTO jobs (title, company, description, requirements, location, latitude, longitude, salary, employment_type, posted_date, contact_email, contact_phone, website, source, source_id, is_remote, is_active, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Company, j.Description, j.Requirements, j.Location, j.Latitude, j.Longitude, j.Salary, j.EmploymentType, ts, j.ContactEmail, j.ContactPhone, j.Website, j.Source, j.SourceID, j.IsRemote, j.IsActive, ts, ts)
	if err != nil {
		return 0, fmt.Errorf("create job: %w", err)
	}

	return out.LastInsertId()
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+jobCols+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("get job: %w", err)
	}

	return j, nil
}

func (r *SQLiteRepo) ListJobs(ctx context.Context, f repository.ListFilter) ([]models.Job, error) {
	clampPage(&f)

	where := []string{"is_active = ?"}
	args := []any{activeFlag(f.IncludeInactive)}

	if f.EmploymentType != "" {
		where = append(where, "employment_type = ?")
		args = append(args, f.EmploymentType)
	}
	if f.RemoteOnly {
		where = append(where, "is_remote = 1")
	}
	if f.Search != "" {
		where = append(where, searchClause([]string{"title", "location", "description"}, f.Search, &args))
	}

	q := `SELECT ` + jobCols + ` FROM jobs WHERE ` + strings.Join(where, " AND ") + ` ORDER BY posted_date DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// UpdateJob replaces every mutable column; posted_date and created are never
// touched. The bool reports whether a row with that id existed.
func (r *SQLiteRepo) UpdateJob(ctx context.Context, j *models.Job) (bool, error) {
	if j == nil {
		return false, fmt.Errorf("job is nil")
	}

	out, err := r.conn.Exec(ctx, `UPDATE jobs SET title = ?, company = ?, description = ?, requirements = ?, location = ?, latitude = ?, longitude = ?, salary = ?, employment_type = ?, contact_email = ?, contact_phone = ?, website = ?, source = ?, source_id = ?, is_remote = ?, is_active = ?, updated = ? WHERE id = ?`,
		j.Title, j.Company, j.Description, j.Requirements, j.Location, j.Latitude, j.Longitude, j.Salary, j.EmploymentType, j.ContactEmail, j.ContactPhone, j.Website, j.Source, j.SourceID, j.IsRemote, j.IsActive, now(), j.ID)
	if err != nil {
		return false, fmt.Errorf("update job: %w", err)
	}

	n, err := out.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) (bool, error) {
	out, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}

	n, err := out.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) NearbyJobs(ctx context.Context, box repository.BoundingBox) ([]models.Job, error) {
	// rows without stored coordinates never match a proximity query
	where := []string{"is_active = 1", "latitude IS NOT NULL", "longitude IS NOT NULL", "ABS(latitude - ?) <= ?"}
	args := []any{box.Lat, box.LatDelta}
	if box.LngDelta != nil {
		where = append(where, "ABS(longitude - ?) <= ?")
		args = append(args, box.Lng, *box.LngDelta)
	}

	q := `SELECT ` + jobCols + ` FROM jobs WHERE ` + strings.Join(where, " AND ") + ` ORDER BY posted_date DESC, id DESC`
	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("nearby jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// DeactivateJobsBefore soft-deletes postings older than the cutoff and
// returns how many rows were flipped.
func (r *SQLiteRepo) DeactivateJobsBefore(ctx context.Context, cutoff int64) (int64, error) {
	out, err := r.conn.Exec(ctx, `UPDATE jobs SET is_active = 0, updated = ? WHERE is_active = 1 AND posted_date < ?`, now(), cutoff)
	if err != nil {
		return 0, fmt.Errorf("deactivate jobs: %w", err)
	}

	return out.RowsAffected()
}

func scanJob(row rowScanner) (*models.Job, error) {
	var j models.Job
	var reqs, salary, email, phone, website, source, sourceID sql.NullString
	var lat, lng sql.NullFloat64
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &reqs, &j.Location, &lat, &lng, &salary, &j.EmploymentType, &j.PostedDate, &email, &phone, &website, &source, &sourceID, &j.IsRemote, &j.IsActive, &j.Created, &j.Updated); err != nil {
		return nil, err
	}

	j.Requirements = reqs.String
	j.Salary = salary.String
	j.ContactEmail = email.String
	j.ContactPhone = phone.String
	j.Website = website.String
	j.Source = source.String
	j.SourceID = sourceID.String
	if lat.Valid {
		j.Latitude = &lat.Float64
	}
	if lng.Valid {
		j.Longitude = &lng.Float64
	}

	return &j, nil
}

func collectJobs(rows *sql.Rows) ([]models.Job, error) {
	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *j)
	}

	return out, rows.Err()
}
