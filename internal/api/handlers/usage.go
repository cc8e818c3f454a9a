package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mindwell-co/beacon/internal/domain"
	"github.com/mindwell-co/beacon/internal/service"
)

type UsageHandler struct {
	svc *service.ResourceService
}

func NewUsageHandler(svc *service.ResourceService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

type recordUsageRequest struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
	Action     string `json:"action"`
}

func (h *UsageHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource_id")
		return
	}

	event := &domain.UsageEvent{
		UserID:     req.UserID,
		ResourceID: resourceID,
		Action:     domain.UsageAction(req.Action),
	}

	if err := h.svc.RecordUsage(r.Context(), event); err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDMissing),
			errors.Is(err, service.ErrResourceIDMissing),
			errors.Is(err, service.ErrInvalidUsageAction):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to record usage")
		}
		return
	}

	writeJSON(w, http.StatusCreated, event)
}
