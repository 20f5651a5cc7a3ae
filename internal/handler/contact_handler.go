package handler

import (
	"net/http"
	"strconv"

	"github.com/tempdev/site/internal/model"
	"github.com/tempdev/site/internal/service"
	"github.com/tempdev/site/pkg/auth"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ContactHandler handles contact form submission and operator listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Budget      string `json:"budget"`
	ProjectType string `json:"projectType"`
	Details     string `json:"details"`
}

type submitResponse struct {
	OK     bool   `json:"ok"`
	Ticket string `json:"ticket"`
}

// Submit handles POST /api/contact.
// name and email are required; budget, projectType and details are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.contactService.Submit(r.Context(), service.ContactRequest{
		Name:        req.Name,
		Email:       req.Email,
		Budget:      req.Budget,
		ProjectType: req.ProjectType,
		Details:     req.Details,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{OK: true, Ticket: rec.Ticket})
}

type adminListResponse struct {
	OK       bool                       `json:"ok"`
	Contacts []*model.ContactSubmission `json:"contacts"`
}

// AdminList handles GET /api/admin/contacts (operator only).
// Supports query params: status (all/pending/sent/email_failed), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !auth.IsOperatorFromContext(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Forbidden."})
		return
	}

	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  defaultListLimit,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxListLimit {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	contacts, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Could not list submissions."})
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, adminListResponse{OK: true, Contacts: contacts})
}
