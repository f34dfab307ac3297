package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pathfinderhq/pathfinder/internal/chat"
)

type ChatHandler struct {
	responder chat.Responder
}

func NewChatHandler(responder chat.Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Message is required")
		return
	}
	if len(req.Message) > 2000 {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Message too long")
		return
	}

	intent := chat.Classify(req.Message)
	reply, err := h.responder.Respond(r.Context(), intent, req.Message)
	if err != nil {
		// responders degrade internally; an error here means even the local
		// path failed
		logger.Error("chat respond", "err", err)
		respondError(w, http.StatusInternalServerError, errInternal, "Error answering message")
		return
	}

	respondData(w, reply, http.StatusOK)
}
