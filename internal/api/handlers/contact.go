package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindwell-co/beacon/internal/domain"
)

type ContactHandler struct {
	directory domain.EmergencyContactDirectory
}

func NewContactHandler(directory domain.EmergencyContactDirectory) *ContactHandler {
	return &ContactHandler{directory: directory}
}

type createContactRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	TextLine    string `json:"text_line,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	contact := &domain.EmergencyContact{
		Name:        req.Name,
		Phone:       req.Phone,
		TextLine:    req.TextLine,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := h.directory.Create(r.Context(), contact); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

type listContactsResponse struct {
	Contacts []domain.EmergencyContact `json:"contacts"`
	Count    int                       `json:"count"`
}

func (h *ContactHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.directory.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	if contacts == nil {
		contacts = []domain.EmergencyContact{}
	}

	writeJSON(w, http.StatusOK, listContactsResponse{
		Contacts: contacts,
		Count:    len(contacts),
	})
}
