// Package validate is the payload validation layer. Schemas are JSON Schema
// documents stored in the database (seeded from embedded files at migration
// time), compiled once and cached; a reload swaps the whole cache.
package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pathfinderhq/pathfinder/pkg/repository"
	"github.com/qri-io/jsonschema"
)

// FieldError describes one schema violation in a rejected payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Validator loads and caches compiled schemas and checks payloads against them.
type Validator struct {
	repo  repository.SchemaRepo
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

func NewValidator(ctx context.Context, r repository.SchemaRepo) (*Validator, error) {
	v := &Validator{
		repo:  r,
		cache: make(map[string]*jsonschema.Schema),
	}
	if err := v.Reload(ctx); err != nil {
		return nil, err
	}

	return v, nil
}

// Reload loads all schemas from the store and compiles them.
func (v *Validator) Reload(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows, err := v.repo.ListSchemas(ctx)
	if err != nil {
		return fmt.Errorf("load schemas: %w", err)
	}

	newCache := make(map[string]*jsonschema.Schema)
	for _, row := range rows {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(row.SchemaJSON), rs); err != nil {
			return fmt.Errorf("compile schema %s: %w", row.Kind, err)
		}

		newCache[row.Kind] = rs
	}

	v.cache = newCache
	return nil
}

func (v *Validator) schema(kind string) (*jsonschema.Schema, bool) {
	v.mu.RLock()
	s, ok := v.cache[kind]
	v.mu.RUnlock()

	return s, ok
}

// Validate checks a raw JSON payload against the schema for the given kind.
// It returns the field-level violations for a rejected payload, or an error
// when the schema is missing or the payload is not valid JSON at all.
// Validation is pure: no state is touched either way.
func (v *Validator) Validate(ctx context.Context, kind string, payload []byte) ([]FieldError, error) {
	s, ok := v.schema(kind)
	if !ok {
		return nil, fmt.Errorf("no schema registered for kind %q", kind)
	}

	if !json.Valid(payload) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}

	keyErrs, err := s.ValidateBytes(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}

	if len(keyErrs) == 0 {
		return nil, nil
	}

	out := make([]FieldError, 0, len(keyErrs))
	for _, ke := range keyErrs {
		out = append(out, FieldError{
			Field:   ke.PropertyPath,
			Message: ke.Message,
			Value:   ke.InvalidValue,
		})
	}

	return out, nil
}
