package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell-co/beacon/internal/domain"
)

type RecommendationStore struct {
	db *pgxpool.Pool
}

func NewRecommendationStore(db *pgxpool.Pool) *RecommendationStore {
	return &RecommendationStore{db: db}
}

// InsertBatch writes one row per generated recommendation. The engine calls
// this fire-and-forget; concurrent requests for the same user may race, so
// no uniqueness is assumed or enforced here.
func (s *RecommendationStore) InsertBatch(ctx context.Context, rows []domain.RecommendationRecord) error {
	if len(rows) == 0 {
		return nil
	}

	for i := range rows {
		r := &rows[i]
		err := s.db.QueryRow(ctx,
			`INSERT INTO recommendations (user_id, recommendation_id, resource_id, score, reasoning_tags, algorithm_version)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, generated_at`,
			r.UserID, r.RecommendationID, r.ResourceID, r.Score, r.ReasoningTags, r.AlgorithmVersion,
		).Scan(&r.ID, &r.GeneratedAt)
		if err != nil {
			return fmt.Errorf("insert recommendation row: %w", err)
		}
	}
	return nil
}

func (s *RecommendationStore) UpdateFeedback(ctx context.Context, userID, recommendationID string, patch domain.FeedbackPatch) error {
	sets := []string{}
	args := []any{}

	if patch.WasAccessed != nil {
		sets = append(sets, fmt.Sprintf("was_accessed = $%d", len(args)+1))
		args = append(args, *patch.WasAccessed)
	}
	if patch.WasHelpful != nil {
		sets = append(sets, fmt.Sprintf("was_helpful = $%d", len(args)+1))
		args = append(args, *patch.WasHelpful)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, userID, recommendationID)
	query := fmt.Sprintf(
		`UPDATE recommendations SET %s WHERE user_id = $%d AND recommendation_id = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args),
	)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RecommendationStore) RecentByUser(ctx context.Context, userID string, limit int) ([]domain.RecommendationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, recommendation_id, resource_id, score, reasoning_tags, algorithm_version, was_accessed, was_helpful, generated_at
		 FROM recommendations
		 WHERE user_id = $1
		 ORDER BY generated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent recommendations query: %w", err)
	}
	defer rows.Close()

	var records []domain.RecommendationRecord
	for rows.Next() {
		var r domain.RecommendationRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.RecommendationID, &r.ResourceID, &r.Score, &r.ReasoningTags, &r.AlgorithmVersion, &r.WasAccessed, &r.WasHelpful, &r.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
