package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pathfinderhq/pathfinder/internal/chat"
	"github.com/pathfinderhq/pathfinder/internal/validate"
	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/ollama"
)

type ResumeHandler struct {
	client    *ollama.Client
	model     string
	validator *validate.Validator
}

func NewResumeHandler(client *ollama.Client, model string, v *validate.Validator) *ResumeHandler {
	return &ResumeHandler{client: client, model: model, validator: v}
}

type resumeResponse struct {
	Resume       string             `json:"resume"`
	Source       string             `json:"source"`
	OriginalData models.ResumeInput `json:"originalData"`
}

func (h *ResumeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request body")
		return
	}
	if !json.Valid(body) {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return
	}

	ctx := r.Context()
	fieldErrs, err := h.validator.Validate(ctx, "resume", body)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error validating resume data")
		return
	}
	if len(fieldErrs) > 0 {
		respondValidationError(w, fieldErrs)
		return
	}

	var in models.ResumeInput
	if err := json.Unmarshal(body, &in); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid JSON")
		return
	}

	// collaborator failure is never a caller-visible error: degrade to the
	// locally rendered skeleton
	resume := ""
	source := chat.SourceFallback
	if h.client != nil {
		prompt := chat.BuildResumePrompt(in)
		text, gerr := h.client.Generate(ctx, h.model, prompt, ollama.GenerateOptions{Temperature: 0.6, MaxTokens: 1500})
		if gerr == nil && strings.TrimSpace(text) != "" {
			resume = strings.TrimSpace(text)
			source = chat.SourceModel
		} else if gerr != nil {
			logger.Warn("resume generation degraded to fallback", "err", gerr)
		}
	}
	if resume == "" {
		resume = chat.FallbackResume(in)
	}

	respondData(w, resumeResponse{Resume: resume, Source: source, OriginalData: in}, http.StatusOK)
}

// Template returns a reference payload shape for clients building the form.
func (h *ResumeHandler) Template(w http.ResponseWriter, r *http.Request) {
	template := models.ResumeInput{
		Name: "Your Full Name",
		ContactInfo: &models.ResumeContact{
			Email:    "your.email@example.com",
			Phone:    "(555) 123-4567",
			Location: "City, State",
		},
		Summary: "Professional summary highlighting key skills and experience",
		Experience: []models.ResumeJobEntry{{
			Company:     "Company Name",
			Position:    "Job Title",
			StartDate:   "Month Year",
			EndDate:     "Month Year",
			Description: "Detailed description of responsibilities and achievements",
		}},
		Education: []models.ResumeSchool{{
			Institution: "University/College Name",
			Degree:      "Degree or Certificate",
			Year:        "Year",
		}},
		Skills: []string{"Skill 1", "Skill 2", "Skill 3"},
	}

	respondData(w, template, http.StatusOK)
}
