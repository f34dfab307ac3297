package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pathfinderhq/pathfinder/internal/cache"
	"github.com/pathfinderhq/pathfinder/internal/geo"
	"github.com/pathfinderhq/pathfinder/internal/validate"
	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

type JobsHandler struct {
	repo      repository.JobRepo
	validator *validate.Validator
	cache     *cache.ListCache
}

func NewJobsHandler(jr repository.JobRepo, v *validate.Validator, c *cache.ListCache) *JobsHandler {
	return &JobsHandler{repo: jr, validator: v, cache: c}
}

type jobPayload struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	Location       string   `json:"location"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Salary         string   `json:"salary"`
	EmploymentType string   `json:"employmentType"`
	ContactEmail   string   `json:"contactEmail"`
	ContactPhone   string   `json:"contactPhone"`
	Website        string   `json:"website"`
	Source         string   `json:"source"`
	SourceID       string   `json:"sourceId"`
	IsRemote       bool     `json:"isRemote"`
	IsActive       *bool    `json:"isActive"`
}

func (p *jobPayload) toModel() *models.Job {
	j := &models.Job{
		Title:          p.Title,
		Company:        p.Company,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Location:       p.Location,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Salary:         p.Salary,
		EmploymentType: p.EmploymentType,
		ContactEmail:   p.ContactEmail,
		ContactPhone:   p.ContactPhone,
		Website:        p.Website,
		Source:         p.Source,
		SourceID:       p.SourceID,
		IsRemote:       p.IsRemote,
		IsActive:       true,
	}
	if j.EmploymentType == "" {
		j.EmploymentType = "Full-time"
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}

	return j
}

func (h *JobsHandler) decodeJobPayload(ctx context.Context, w http.ResponseWriter, r *http.Request) *jobPayload {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request body")
		return nil
	}

	if !json.Valid(body) {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return nil
	}

	fieldErrs, err := h.validator.Validate(ctx, "job", body)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error validating job")
		return nil
	}
	if len(fieldErrs) > 0 {
		respondValidationError(w, fieldErrs)
		return nil
	}

	var p jobPayload
	if err := json.Unmarshal(body, &p); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return nil
	}

	return &p
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := listFilterFromQuery(q)
	f.EmploymentType = q.Get("employmentType")
	f.RemoteOnly = q.Get("isRemote") == "true"

	ctx := r.Context()
	body, _, err := h.cache.Fetch(ctx, "jobs", r.URL.RequestURI(), func() ([]byte, error) {
		items, err := h.repo.ListJobs(ctx, f)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Job{}
		}
		n := len(items)
		return json.Marshal(envelope{Success: true, Data: items, Count: &n})
	})
	if err != nil {
		logger.Error("list jobs", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching jobs")
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	j, err := h.repo.GetJob(r.Context(), id)
	if err != nil {
		logger.Error("get job", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching job")
		return
	}
	if j == nil {
		respondError(w, http.StatusNotFound, errNotFound, "Job not found")
		return
	}

	respondData(w, j, http.StatusOK)
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p := h.decodeJobPayload(ctx, w, r)
	if p == nil {
		return
	}

	j := p.toModel()
	id, err := h.repo.CreateJob(ctx, j)
	if err != nil {
		logger.Error("create job", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating job")
		return
	}
	j.ID = id

	h.invalidate(ctx)
	respondData(w, j, http.StatusCreated)
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	p := h.decodeJobPayload(ctx, w, r)
	if p == nil {
		return
	}

	j := p.toModel()
	j.ID = id
	found, err := h.repo.UpdateJob(ctx, j)
	if err != nil {
		logger.Error("update job", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error updating job")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, errNotFound, "Job not found")
		return
	}

	updated, err := h.repo.GetJob(ctx, id)
	if err != nil {
		logger.Error("update job", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error updating job")
		return
	}

	h.invalidate(ctx)
	respondData(w, updated, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	found, err := h.repo.DeleteJob(ctx, id)
	if err != nil {
		logger.Error("delete job", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error deleting job")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, errNotFound, "Job not found")
		return
	}

	h.invalidate(ctx)
	respondMessage(w, "Job deleted successfully")
}

func (h *JobsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lat, err1 := strconv.ParseFloat(vars["lat"], 64)
	lng, err2 := strconv.ParseFloat(vars["lng"], 64)
	if err1 != nil || err2 != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid coordinates")
		return
	}

	radius, ok := parseRadius(r.URL.Query())
	if !ok {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid distance")
		return
	}

	box, err := geo.BoundingBox(lat, lng, radius)
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, err.Error())
		return
	}

	ctx := r.Context()
	body, _, err := h.cache.Fetch(ctx, "jobs", r.URL.RequestURI(), func() ([]byte, error) {
		items, err := h.repo.NearbyJobs(ctx, box)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Job{}
		}
		n := len(items)
		return json.Marshal(envelope{
			Success:  true,
			Data:     items,
			Count:    &n,
			Distance: fmt.Sprintf("%g miles", radius),
		})
	})
	if err != nil {
		logger.Error("nearby jobs", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching nearby jobs")
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *JobsHandler) invalidate(ctx context.Context) {
	if err := h.cache.Invalidate(ctx, "jobs"); err != nil {
		logger.Warn("job cache invalidation failed", "err", err)
	}
}
