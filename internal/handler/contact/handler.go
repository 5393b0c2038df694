package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	contactService "github.com/syam1133/portfolio-assistant/internal/service/contact"
	"github.com/syam1133/portfolio-assistant/pkg/utils"
)

// Handler exposes the contact-form relay endpoint.
type Handler struct {
	contactSvc *contactService.Service
}

// New creates the contact handler.
func New(contactSvc *contactService.Service) *Handler {
	return &Handler{contactSvc: contactSvc}
}

// RegisterRoutes registers the contact route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload contactService.Submission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Message = strings.TrimSpace(payload.Message)

	if payload.Name == "" || payload.Email == "" || payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	if err := h.contactSvc.Send(r.Context(), payload); err != nil {
		log.Printf("[contact] relay failed: %v", err)
		utils.RespondJSON(w, http.StatusBadGateway, map[string]bool{"success": false})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
