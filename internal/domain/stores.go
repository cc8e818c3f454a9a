package domain

import (
	"context"

	"github.com/google/uuid"
)

// ResourceCatalog is the read-mostly wellness resource lookup. Create exists
// for the admin surface and the seed script; the engine only reads.
type ResourceCatalog interface {
	Create(ctx context.Context, r *Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (*Resource, error)
	GetFeatured(ctx context.Context, limit int) ([]Resource, error)
	GetEmergency(ctx context.Context) ([]Resource, error)
	FindSimilar(ctx context.Context, embedding []float32, limit int) ([]ResourceWithScore, error)
}

type EmergencyContactDirectory interface {
	Create(ctx context.Context, c *EmergencyContact) error
	ListActive(ctx context.Context) ([]EmergencyContact, error)
}

type UserHistoryStore interface {
	Record(ctx context.Context, e *UsageEvent) error
	Recent(ctx context.Context, userID string, limit int) ([]UsageEvent, error)
}

type RecommendationStore interface {
	InsertBatch(ctx context.Context, rows []RecommendationRecord) error
	UpdateFeedback(ctx context.Context, userID, recommendationID string, patch FeedbackPatch) error
	RecentByUser(ctx context.Context, userID string, limit int) ([]RecommendationRecord, error)
}

// TextGenerator is the optional external LLM collaborator. Complete returns
// raw text expected to be JSON; any error (including timeout) sends the
// engine down the deterministic fallback path.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
