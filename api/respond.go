package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pathfinderhq/pathfinder/internal/validate"
)

// Error categories reported in the envelope. The HTTP status carries the same
// signal at the boundary: 400, 404, 500.
const (
	errInvalidInput = "invalid_input"
	errNotFound     = "not_found"
	errInternal     = "internal"
)

// envelope is the uniform shape of every response body.
type envelope struct {
	Success  bool                  `json:"success"`
	Data     any                   `json:"data,omitempty"`
	Count    *int                  `json:"count,omitempty"`
	Distance string                `json:"distance,omitempty"`
	Message  string                `json:"message,omitempty"`
	Error    string                `json:"error,omitempty"`
	Details  []validate.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write response", slog.Any("err", err))
	}
}

func writeRaw(w http.ResponseWriter, body []byte, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error("write response", slog.Any("err", err))
	}
}

func respondData(w http.ResponseWriter, data any, status int) {
	writeJSON(w, envelope{Success: true, Data: data}, status)
}

func respondMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, envelope{Success: true, Message: msg}, http.StatusOK)
}

func respondError(w http.ResponseWriter, status int, category, msg string) {
	writeJSON(w, envelope{Success: false, Error: category, Message: msg}, status)
}

func respondValidationError(w http.ResponseWriter, details []validate.FieldError) {
	writeJSON(w, envelope{
		Success: false,
		Error:   errInvalidInput,
		Message: "Validation error",
		Details: details,
	}, http.StatusBadRequest)
}
