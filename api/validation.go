package api

import (
	"encoding/json"
	"net/http"

	"github.com/qri-io/jsonschema"

	"github.com/pathfinderhq/pathfinder/internal/validate"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

type ValidationHandler struct {
	validator  *validate.Validator
	schemaRepo repository.SchemaRepo
}

func NewValidationHandler(v *validate.Validator, sr repository.SchemaRepo) *ValidationHandler {
	return &ValidationHandler{validator: v, schemaRepo: sr}
}

// Reload recompiles the schema cache from the store.
func (h *ValidationHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.validator.Reload(r.Context()); err != nil {
		logger.Error("reload schemas", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error reloading schemas")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type schemaPayload struct {
	Kind       string          `json:"kind"`
	SchemaJSON json.RawMessage `json:"schema_json"`
}

// Upsert stores a replacement schema after a compile check; a reload is still
// required before it takes effect.
func (h *ValidationHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var p schemaPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return
	}
	if p.Kind == "" {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Kind is required")
		return
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(p.SchemaJSON, rs); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid schema JSON")
		return
	}

	if err := h.schemaRepo.UpsertSchema(r.Context(), p.Kind, string(p.SchemaJSON)); err != nil {
		logger.Error("store schema", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error storing schema")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
