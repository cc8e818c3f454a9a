package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mindwell-co/beacon/internal/domain"
	"github.com/mindwell-co/beacon/internal/service"
)

type RecommendationHandler struct {
	engine *service.RecommendationEngine
}

func NewRecommendationHandler(engine *service.RecommendationEngine) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

type generateRequest struct {
	UserProfile domain.UserProfile        `json:"user_profile"`
	Context     domain.SituationalContext `json:"context"`
}

type generateResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
	CrisisDetected  bool                    `json:"crisis_detected"`
}

func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Context.UrgencyLevel != "" && !domain.ValidUrgencyLevel(string(req.Context.UrgencyLevel)) {
		writeError(w, http.StatusBadRequest, "invalid urgency_level")
		return
	}

	recs, err := h.engine.Generate(r.Context(), req.UserProfile, req.Context)
	if err != nil {
		if errors.Is(err, service.ErrUserIDMissing) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to generate recommendations")
		return
	}

	if recs == nil {
		recs = []domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Recommendations: recs,
		Count:           len(recs),
		CrisisDetected:  req.Context.UrgencyLevel == domain.UrgencyCrisis,
	})
}

type trackUsageRequest struct {
	UserID           string `json:"user_id"`
	RecommendationID string `json:"recommendation_id"`
	Action           string `json:"action"`
}

func (h *RecommendationHandler) TrackUsage(w http.ResponseWriter, r *http.Request) {
	var req trackUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.engine.TrackUsage(r.Context(), req.UserID, req.RecommendationID, domain.UsageAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDMissing),
			errors.Is(err, service.ErrRecommendationIDMissing),
			errors.Is(err, service.ErrInvalidUsageAction):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to track usage")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

type recentResponse struct {
	Recommendations []domain.RecommendationRecord `json:"recommendations"`
	Count           int                           `json:"count"`
}

func (h *RecommendationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id parameter is required")
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	records, err := h.engine.RecentForUser(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch recommendations")
		return
	}

	if records == nil {
		records = []domain.RecommendationRecord{}
	}

	writeJSON(w, http.StatusOK, recentResponse{
		Recommendations: records,
		Count:           len(records),
	})
}
