package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindwell-co/beacon/internal/domain"
)

var (
	ErrResourceTitleEmpty = errors.New("title is required")
	ErrSearchQueryEmpty   = errors.New("query is required")
	ErrResourceIDMissing  = errors.New("resource_id is required")
)

// ResourceService manages the wellness catalog and the usage-event feed the
// engine reads as history.
type ResourceService struct {
	catalog  domain.ResourceCatalog
	history  domain.UserHistoryStore
	embedder domain.EmbeddingClient
	logger   *zap.Logger
}

func NewResourceService(catalog domain.ResourceCatalog, history domain.UserHistoryStore, embedder domain.EmbeddingClient, logger *zap.Logger) *ResourceService {
	return &ResourceService{
		catalog:  catalog,
		history:  history,
		embedder: embedder,
		logger:   logger,
	}
}

func (s *ResourceService) Create(ctx context.Context, r *domain.Resource) error {
	if r.Title == "" {
		return ErrResourceTitleEmpty
	}

	// Generate embedding for semantic search
	if s.embedder != nil {
		emb, err := s.embedder.Embed(ctx, r.Title+"\n"+r.Description)
		if err != nil {
			s.logger.Warn("embedding generation failed", zap.Error(err))
			// Continue without embedding; search won't find it but the catalog entry still works
		} else {
			r.Embedding = emb
		}
	}

	return s.catalog.Create(ctx, r)
}

func (s *ResourceService) Featured(ctx context.Context, limit int) ([]domain.Resource, error) {
	return s.catalog.GetFeatured(ctx, limit)
}

// Search embeds the query and returns catalog entries by cosine similarity.
func (s *ResourceService) Search(ctx context.Context, query string, limit int) ([]domain.ResourceWithScore, error) {
	if query == "" {
		return nil, ErrSearchQueryEmpty
	}
	if s.embedder == nil {
		return nil, errors.New("embedding client not configured")
	}

	emb, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.catalog.FindSimilar(ctx, emb, limit)
}

// RecordUsage appends a resource usage event to the user's history.
func (s *ResourceService) RecordUsage(ctx context.Context, e *domain.UsageEvent) error {
	if e.UserID == "" {
		return ErrUserIDMissing
	}
	if e.ResourceID == uuid.Nil {
		return ErrResourceIDMissing
	}
	if !domain.ValidUsageAction(string(e.Action)) {
		return ErrInvalidUsageAction
	}

	return s.history.Record(ctx, e)
}
