package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell-co/beacon/internal/domain"
)

type UsageEventStore struct {
	db *pgxpool.Pool
}

func NewUsageEventStore(db *pgxpool.Pool) *UsageEventStore {
	return &UsageEventStore{db: db}
}

func (s *UsageEventStore) Record(ctx context.Context, e *domain.UsageEvent) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO usage_events (user_id, resource_id, action)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		e.UserID, e.ResourceID, e.Action,
	).Scan(&e.ID, &e.CreatedAt)
}

func (s *UsageEventStore) Recent(ctx context.Context, userID string, limit int) ([]domain.UsageEvent, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, resource_id, action, created_at
		 FROM usage_events
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent usage query: %w", err)
	}
	defer rows.Close()

	var events []domain.UsageEvent
	for rows.Next() {
		var e domain.UsageEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.ResourceID, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
