package domain

import (
	"time"

	"github.com/google/uuid"
)

// Resource is a wellness catalog entry. Resources are read-only from the
// engine's perspective; IDs are stable and unique.
type Resource struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ResourceType string    `json:"resource_type"`
	IsEmergency  bool      `json:"is_emergency"`
	IsFeatured   bool      `json:"is_featured"`
	Embedding    []float32 `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ResourceWithScore struct {
	Resource
	Score float32 `json:"score"`
}

// EmergencyContact is a human-reachable crisis line. Active contacts are
// served in ascending SortOrder.
type EmergencyContact struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TextLine    string    `json:"text_line,omitempty"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
