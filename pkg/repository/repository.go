package repository

import (
	"context"

	"github.com/pathfinderhq/pathfinder/pkg/models"
)

// Repository interfaces for the directory entities. These are the public
// contracts consumers should depend on; concrete implementations live under
// internal/.

// ListFilter carries the optional listing parameters shared by both entity
// kinds. Every supplied field narrows the result (conjunctive); zero values
// impose no constraint except IncludeInactive, which defaults to active-only.
type ListFilter struct {
	// Type filters resources by category.
	Type string
	// Eligibility matches resources whose eligibility list contains the value.
	Eligibility string
	// EmploymentType filters jobs by employment type.
	EmploymentType string
	// RemoteOnly restricts jobs to remote postings.
	RemoteOnly bool
	// Search is matched case-insensitively as a substring of the name/title,
	// address/location and description fields.
	Search string
	// IncludeInactive flips the active-flag filter to inactive records.
	IncludeInactive bool
	Limit           int
	Offset          int
}

// BoundingBox is the rectangular approximation of a radius search. A nil
// LngDelta means the longitude axis is unconstrained (polar reference point).
type BoundingBox struct {
	Lat      float64
	Lng      float64
	LatDelta float64
	LngDelta *float64
}

type ResourceRepo interface {
	CreateResource(ctx context.Context, res *models.Resource) (int64, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	ListResources(ctx context.Context, f ListFilter) ([]models.Resource, error)
	UpdateResource(ctx context.Context, res *models.Resource) (bool, error)
	DeleteResource(ctx context.Context, id int64) (bool, error)
	NearbyResources(ctx context.Context, box BoundingBox) ([]models.Resource, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, f ListFilter) ([]models.Job, error)
	UpdateJob(ctx context.Context, j *models.Job) (bool, error)
	DeleteJob(ctx context.Context, id int64) (bool, error)
	NearbyJobs(ctx context.Context, box BoundingBox) ([]models.Job, error)
	DeactivateJobsBefore(ctx context.Context, cutoff int64) (int64, error)
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type SchemaRepo interface {
	UpsertSchema(ctx context.Context, kind, schemaJSON string) error
	ListSchemas(ctx context.Context) ([]models.Schema, error)
}
