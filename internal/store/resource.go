package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/mindwell-co/beacon/internal/domain"
)

type ResourceStore struct {
	db *pgxpool.Pool
}

func NewResourceStore(db *pgxpool.Pool) *ResourceStore {
	return &ResourceStore{db: db}
}

func (s *ResourceStore) Create(ctx context.Context, r *domain.Resource) error {
	var embedding *pgvector.Vector
	if len(r.Embedding) > 0 {
		v := pgvector.NewVector(r.Embedding)
		embedding = &v
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO resources (title, description, category, resource_type, is_emergency, is_featured, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		r.Title, r.Description, r.Category, r.ResourceType, r.IsEmergency, r.IsFeatured, embedding,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func (s *ResourceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	r := &domain.Resource{}
	err := s.db.QueryRow(ctx,
		`SELECT id, title, description, category, resource_type, is_emergency, is_featured, created_at, updated_at
		 FROM resources WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.ResourceType, &r.IsEmergency, &r.IsFeatured, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ResourceStore) GetFeatured(ctx context.Context, limit int) ([]domain.Resource, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, category, resource_type, is_emergency, is_featured, created_at, updated_at
		 FROM resources WHERE is_featured = TRUE
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("featured query: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func (s *ResourceStore) GetEmergency(ctx context.Context) ([]domain.Resource, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, category, resource_type, is_emergency, is_featured, created_at, updated_at
		 FROM resources WHERE is_emergency = TRUE OR category = 'safety'
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("emergency query: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func (s *ResourceStore) FindSimilar(ctx context.Context, embedding []float32, limit int) ([]domain.ResourceWithScore, error) {
	if limit <= 0 {
		limit = 10
	}

	vec := pgvector.NewVector(embedding)

	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, category, resource_type, is_emergency, is_featured, created_at, updated_at,
		        1 - (embedding <=> $1) AS score
		 FROM resources
		 WHERE embedding IS NOT NULL
		 ORDER BY score DESC
		 LIMIT $2`,
		vec, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find similar query: %w", err)
	}
	defer rows.Close()

	var results []domain.ResourceWithScore
	for rows.Next() {
		var rs domain.ResourceWithScore
		err := rows.Scan(
			&rs.ID, &rs.Title, &rs.Description, &rs.Category, &rs.ResourceType,
			&rs.IsEmergency, &rs.IsFeatured, &rs.CreatedAt, &rs.UpdatedAt,
			&rs.Score,
		)
		if err != nil {
			return nil, fmt.Errorf("scan find similar row: %w", err)
		}
		results = append(results, rs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find similar rows: %w", err)
	}

	return results, nil
}

func scanResources(rows pgx.Rows) ([]domain.Resource, error) {
	var resources []domain.Resource
	for rows.Next() {
		var r domain.Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.ResourceType, &r.IsEmergency, &r.IsFeatured, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}
