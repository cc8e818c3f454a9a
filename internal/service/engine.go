package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mindwell-co/beacon/internal/domain"
)

var (
	ErrUserIDMissing = errors.New("user_id is required")
)

const (
	// MaxRecommendations caps the non-crisis result; the crisis path is
	// deliberately uncapped.
	MaxRecommendations = 7
	// AlgorithmVersion tags every persisted batch.
	AlgorithmVersion = "personalization-v1"
	// DefaultLLMTimeout bounds the text-generation call when no config
	// override is supplied.
	DefaultLLMTimeout = 20 * time.Second

	candidatePoolLimit = 10
	historyLimit       = 5
)

// RecommendationEngine orchestrates one generation request: crisis
// short-circuit, candidate generation (AI or fallback), scoring, ranking,
// truncation, and a fire-and-forget persistence write. It is stateless
// across calls; every collaborator is injected at construction.
type RecommendationEngine struct {
	catalog    domain.ResourceCatalog
	contacts   domain.EmergencyContactDirectory
	history    domain.UserHistoryStore
	recStore   domain.RecommendationStore
	generator  domain.TextGenerator
	scorer     *PersonalizationScorer
	fallback   *FallbackRecommender
	llmTimeout time.Duration
	logger     *zap.Logger
}

// NewRecommendationEngine wires the engine. generator may be nil, in which
// case every request takes the deterministic fallback path.
func NewRecommendationEngine(
	catalog domain.ResourceCatalog,
	contacts domain.EmergencyContactDirectory,
	history domain.UserHistoryStore,
	recStore domain.RecommendationStore,
	generator domain.TextGenerator,
	logger *zap.Logger,
) *RecommendationEngine {
	return &RecommendationEngine{
		catalog:    catalog,
		contacts:   contacts,
		history:    history,
		recStore:   recStore,
		generator:  generator,
		scorer:     NewPersonalizationScorer(),
		fallback:   NewFallbackRecommender(),
		llmTimeout: DefaultLLMTimeout,
		logger:     logger,
	}
}

func (e *RecommendationEngine) SetLLMTimeout(d time.Duration) {
	if d > 0 {
		e.llmTimeout = d
	}
}

// Generate returns the ordered recommendation batch for one request.
// The only error it surfaces is an invalid request; every collaborator
// failure degrades to a smaller input or the fallback path.
func (e *RecommendationEngine) Generate(ctx context.Context, profile domain.UserProfile, sctx domain.SituationalContext) ([]domain.Recommendation, error) {
	if profile.UserID == "" {
		return nil, ErrUserIDMissing
	}

	if sctx.UrgencyLevel == domain.UrgencyCrisis {
		recs := e.crisisRecommendations(ctx)
		e.persistAsync(profile.UserID, recs)
		return recs, nil
	}

	pool, err := e.catalog.GetFeatured(ctx, candidatePoolLimit)
	if err != nil {
		e.logger.Warn("resource pool fetch failed, continuing with empty pool", zap.Error(err))
		pool = nil
	}

	history, err := e.history.Recent(ctx, profile.UserID, historyLimit)
	if err != nil {
		e.logger.Warn("usage history fetch failed, continuing without history", zap.Error(err))
		history = nil
	}

	candidates := e.generateWithModel(ctx, profile, sctx, pool, history)
	if len(candidates) == 0 {
		candidates = e.fallback.Recommend(pool)
	}

	ranked := e.scorer.ScoreAndRank(candidates, profile, sctx)
	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}

	e.persistAsync(profile.UserID, ranked)

	return ranked, nil
}

// generateWithModel asks the text generator for candidates. Every failure
// mode (no generator, call error, timeout, unparseable or empty output)
// collapses to nil so the caller falls back deterministically.
func (e *RecommendationEngine) generateWithModel(ctx context.Context, profile domain.UserProfile, sctx domain.SituationalContext, pool []domain.Resource, history []domain.UsageEvent) []domain.Recommendation {
	if e.generator == nil {
		return nil
	}

	prompt := buildRecommendationPrompt(profile, sctx, pool, history)

	genCtx, cancel := context.WithTimeout(ctx, e.llmTimeout)
	defer cancel()

	raw, err := e.generator.Complete(genCtx, prompt)
	if err != nil {
		e.logger.Warn("text generation failed, falling back", zap.Error(err))
		return nil
	}

	recs, err := decodeCandidates(raw)
	if err != nil {
		e.logger.Warn("generator output rejected, falling back", zap.Error(err))
		return nil
	}
	if len(recs) == 0 {
		e.logger.Warn("generator returned no candidates, falling back")
		return nil
	}

	return recs
}

// persistAsync records the batch without blocking the response. Crisis
// items carry their priority as the stored score since they are never
// scored. Persistence failure is logged and otherwise ignored.
func (e *RecommendationEngine) persistAsync(userID string, recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}

	rows := make([]domain.RecommendationRecord, 0, len(recs))
	for _, r := range recs {
		score := r.PersonalizedScore
		if r.CrisisLevel {
			score = r.Priority
		}
		rows = append(rows, domain.RecommendationRecord{
			UserID:           userID,
			RecommendationID: r.ID,
			ResourceID:       r.ResourceID,
			Score:            score,
			ReasoningTags:    []string{r.Reasoning},
			AlgorithmVersion: AlgorithmVersion,
		})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.recStore.InsertBatch(ctx, rows); err != nil {
			e.logger.Warn("failed to persist recommendation batch",
				zap.String("user_id", userID),
				zap.Int("count", len(rows)),
				zap.Error(err))
		}
	}()
}

// RecentForUser returns previously persisted rows for a dashboard view.
func (e *RecommendationEngine) RecentForUser(ctx context.Context, userID string, limit int) ([]domain.RecommendationRecord, error) {
	if userID == "" {
		return nil, ErrUserIDMissing
	}
	return e.recStore.RecentByUser(ctx, userID, limit)
}
