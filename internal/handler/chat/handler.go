package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syam1133/portfolio-assistant/internal/service/conversation"
	"github.com/syam1133/portfolio-assistant/pkg/utils"
)

// Handler exposes the assistant over HTTP.
type Handler struct {
	conv *conversation.Service
}

// New creates the chat handler.
func New(conv *conversation.Service) *Handler {
	return &Handler{conv: conv}
}

// RegisterRoutes registers the REST chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
	r.Post("/chat", h.handleChat)
}

// handleCreateSession opens a session and returns it together with the
// greeting-seeded transcript.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.conv.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	transcript, err := h.conv.Transcript(r.Context(), session.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load transcript")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"session":    session,
		"transcript": transcript,
	})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	transcript, err := h.conv.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, transcript)
}

// handleChat submits one visitor turn and returns the assistant turn.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.conv.Submit(r.Context(), payload.SessionID, payload.Message)
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, "message is required")
	case errors.Is(err, conversation.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, conversation.ErrBusy):
		utils.RespondError(w, http.StatusConflict, "a reply is already being generated")
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate reply")
	default:
		utils.RespondJSON(w, http.StatusOK, reply)
	}
}
