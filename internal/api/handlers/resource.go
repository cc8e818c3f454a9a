package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mindwell-co/beacon/internal/domain"
	"github.com/mindwell-co/beacon/internal/service"
)

type ResourceHandler struct {
	svc *service.ResourceService
}

func NewResourceHandler(svc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

type createResourceRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ResourceType string `json:"resource_type"`
	IsEmergency  bool   `json:"is_emergency"`
	IsFeatured   bool   `json:"is_featured"`
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resource := &domain.Resource{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ResourceType: req.ResourceType,
		IsEmergency:  req.IsEmergency,
		IsFeatured:   req.IsFeatured,
	}

	if err := h.svc.Create(r.Context(), resource); err != nil {
		if errors.Is(err, service.ErrResourceTitleEmpty) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create resource")
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

type listResourcesResponse struct {
	Resources []domain.Resource `json:"resources"`
	Count     int               `json:"count"`
}

func (h *ResourceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	resources, err := h.svc.Featured(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list resources")
		return
	}

	if resources == nil {
		resources = []domain.Resource{}
	}

	writeJSON(w, http.StatusOK, listResourcesResponse{
		Resources: resources,
		Count:     len(resources),
	})
}

type searchResourcesResponse struct {
	Resources []domain.ResourceWithScore `json:"resources"`
	Query     string                     `json:"query"`
	Count     int                        `json:"count"`
}

func (h *ResourceHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 50 {
			limit = l
		}
	}

	results, err := h.svc.Search(r.Context(), query, limit)
	if err != nil {
		if errors.Is(err, service.ErrSearchQueryEmpty) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to search resources")
		return
	}

	if results == nil {
		results = []domain.ResourceWithScore{}
	}

	writeJSON(w, http.StatusOK, searchResourcesResponse{
		Resources: results,
		Query:     query,
		Count:     len(results),
	})
}
