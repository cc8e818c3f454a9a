package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindwell-co/beacon/internal/domain"
)

// generatedCandidate mirrors the JSON shape the generator is asked to emit.
// It exists so malformed output fails decoding here instead of leaking
// half-formed recommendations into ranking.
type generatedCandidate struct {
	ID                  string   `json:"id"`
	Type                string   `json:"type"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Reasoning           string   `json:"reasoning"`
	Priority            int      `json:"priority"`
	EstimatedTime       int      `json:"estimated_time"`
	ResourceID          string   `json:"resource_id,omitempty"`
	ActionSteps         []string `json:"action_steps"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

type generatedPayload struct {
	Recommendations []generatedCandidate `json:"recommendations"`
}

// decodeCandidates parses raw generator output into recommendations.
// Bad JSON, a missing recommendations array, or a single invalid entry
// fails the whole batch; there is no partial recovery.
// Callers treat an error as "use the fallback path".
func decodeCandidates(raw string) ([]domain.Recommendation, error) {
	// Strip markdown fences if present
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var payload generatedPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse generator output: %w", err)
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("generator output missing recommendations array")
	}

	recs := make([]domain.Recommendation, 0, len(payload.Recommendations))
	for i, c := range payload.Recommendations {
		if c.ID == "" || c.Type == "" || c.Title == "" || c.Description == "" {
			return nil, fmt.Errorf("generator entry %d missing required fields", i)
		}
		if c.Priority <= 0 {
			return nil, fmt.Errorf("generator entry %d has invalid priority %d", i, c.Priority)
		}
		if c.EstimatedTime < 0 {
			return nil, fmt.Errorf("generator entry %d has negative estimated_time", i)
		}

		rec := domain.Recommendation{
			ID:                  "ai-" + c.ID,
			Type:                domain.RecommendationType(c.Type),
			Title:               c.Title,
			Description:         c.Description,
			Reasoning:           c.Reasoning,
			Priority:            c.Priority,
			EstimatedTime:       c.EstimatedTime,
			ActionSteps:         c.ActionSteps,
			FollowUpSuggestions: c.FollowUpSuggestions,
		}

		if c.ResourceID != "" {
			id, err := uuid.Parse(c.ResourceID)
			if err != nil {
				return nil, fmt.Errorf("generator entry %d has invalid resource_id: %w", i, err)
			}
			rec.ResourceID = &id
		}

		recs = append(recs, rec)
	}

	return recs, nil
}
