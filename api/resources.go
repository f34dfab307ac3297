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

const maxPayloadSize = 1 << 20

type ResourcesHandler struct {
	repo      repository.ResourceRepo
	validator *validate.Validator
	cache     *cache.ListCache
}

func NewResourcesHandler(rr repository.ResourceRepo, v *validate.Validator, c *cache.ListCache) *ResourcesHandler {
	return &ResourcesHandler{repo: rr, validator: v, cache: c}
}

// resourcePayload is the validated write shape. Fields left out of the
// payload take their schema defaults when the model is built, so an update
// replaces the whole record.
type resourcePayload struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Phone         string   `json:"phone"`
	Hours         string   `json:"hours"`
	Description   string   `json:"description"`
	Capacity      string   `json:"capacity"`
	Eligibility   []string `json:"eligibility"`
	Website       string   `json:"website"`
	ContactPerson string   `json:"contactPerson"`
	Requirements  string   `json:"requirements"`
	Services      []string `json:"services"`
	IsActive      *bool    `json:"isActive"`
}

func (p *resourcePayload) toModel() *models.Resource {
	res := &models.Resource{
		Name:          p.Name,
		Type:          p.Type,
		Address:       p.Address,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Phone:         p.Phone,
		Hours:         p.Hours,
		Description:   p.Description,
		Capacity:      p.Capacity,
		Eligibility:   p.Eligibility,
		Website:       p.Website,
		ContactPerson: p.ContactPerson,
		Requirements:  p.Requirements,
		Services:      p.Services,
		IsActive:      true,
	}
	if len(res.Eligibility) == 0 {
		res.Eligibility = []string{"all"}
	}
	if p.IsActive != nil {
		res.IsActive = *p.IsActive
	}

	return res
}

// decodeResourcePayload reads, schema-validates and decodes a write payload.
// It writes the rejection itself and returns nil when the payload is bad.
func (h *ResourcesHandler) decodeResourcePayload(ctx context.Context, w http.ResponseWriter, r *http.Request) *resourcePayload {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request body")
		return nil
	}

	if !json.Valid(body) {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return nil
	}

	fieldErrs, err := h.validator.Validate(ctx, "resource", body)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error validating resource")
		return nil
	}
	if len(fieldErrs) > 0 {
		respondValidationError(w, fieldErrs)
		return nil
	}

	var p resourcePayload
	if err := json.Unmarshal(body, &p); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return nil
	}

	return &p
}

func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := listFilterFromQuery(q)
	f.Type = q.Get("type")
	f.Eligibility = q.Get("eligibility")

	ctx := r.Context()
	body, _, err := h.cache.Fetch(ctx, "resources", r.URL.RequestURI(), func() ([]byte, error) {
		items, err := h.repo.ListResources(ctx, f)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Resource{}
		}
		n := len(items)
		return json.Marshal(envelope{Success: true, Data: items, Count: &n})
	})
	if err != nil {
		logger.Error("list resources", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching resources")
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *ResourcesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.repo.GetResource(r.Context(), id)
	if err != nil {
		logger.Error("get resource", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching resource")
		return
	}
	if res == nil {
		respondError(w, http.StatusNotFound, errNotFound, "Resource not found")
		return
	}

	respondData(w, res, http.StatusOK)
}

func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p := h.decodeResourcePayload(ctx, w, r)
	if p == nil {
		return
	}

	res := p.toModel()
	id, err := h.repo.CreateResource(ctx, res)
	if err != nil {
		logger.Error("create resource", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating resource")
		return
	}
	res.ID = id

	h.invalidate(ctx)
	respondData(w, res, http.StatusCreated)
}

func (h *ResourcesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	p := h.decodeResourcePayload(ctx, w, r)
	if p == nil {
		return
	}

	res := p.toModel()
	res.ID = id
	found, err := h.repo.UpdateResource(ctx, res)
	if err != nil {
		logger.Error("update resource", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error updating resource")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, errNotFound, "Resource not found")
		return
	}

	updated, err := h.repo.GetResource(ctx, id)
	if err != nil {
		logger.Error("update resource", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error updating resource")
		return
	}

	h.invalidate(ctx)
	respondData(w, updated, http.StatusOK)
}

func (h *ResourcesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	found, err := h.repo.DeleteResource(ctx, id)
	if err != nil {
		logger.Error("delete resource", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error deleting resource")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, errNotFound, "Resource not found")
		return
	}

	h.invalidate(ctx)
	respondMessage(w, "Resource deleted successfully")
}

func (h *ResourcesHandler) Nearby(w http.ResponseWriter, r *http.Request) {
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
	body, _, err := h.cache.Fetch(ctx, "resources", r.URL.RequestURI(), func() ([]byte, error) {
		items, err := h.repo.NearbyResources(ctx, box)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Resource{}
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
		logger.Error("nearby resources", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error fetching nearby resources")
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *ResourcesHandler) invalidate(ctx context.Context) {
	if err := h.cache.Invalidate(ctx, "resources"); err != nil {
		logger.Warn("resource cache invalidation failed", "err", err)
	}
}

// pathID parses the {id} path variable, rejecting non-numeric ids.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid id")
		return 0, false
	}
	return id, true
}
