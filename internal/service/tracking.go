package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mindwell-co/beacon/internal/domain"
)

var (
	ErrRecommendationIDMissing = errors.New("recommendation_id is required")
	ErrInvalidUsageAction      = errors.New("invalid action")
)

// TrackUsage applies a usage action to a previously persisted
// recommendation. Accessed and completed mark the row as accessed; helpful
// and not_helpful set the helpfulness verdict. The update itself is
// best-effort: store failures are logged, never surfaced.
func (e *RecommendationEngine) TrackUsage(ctx context.Context, userID, recommendationID string, action domain.UsageAction) error {
	if userID == "" {
		return ErrUserIDMissing
	}
	if recommendationID == "" {
		return ErrRecommendationIDMissing
	}
	if !domain.ValidUsageAction(string(action)) {
		return ErrInvalidUsageAction
	}

	var patch domain.FeedbackPatch
	switch action {
	case domain.ActionAccessed, domain.ActionCompleted:
		accessed := true
		patch.WasAccessed = &accessed
	case domain.ActionHelpful:
		helpful := true
		patch.WasHelpful = &helpful
	case domain.ActionNotHelpful:
		helpful := false
		patch.WasHelpful = &helpful
	}

	if err := e.recStore.UpdateFeedback(ctx, userID, recommendationID, patch); err != nil {
		e.logger.Warn("failed to record recommendation feedback",
			zap.String("user_id", userID),
			zap.String("recommendation_id", recommendationID),
			zap.String("action", string(action)),
			zap.Error(err))
	}

	return nil
}
