package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell-co/beacon/internal/domain"
)

type EmergencyContactStore struct {
	db *pgxpool.Pool
}

func NewEmergencyContactStore(db *pgxpool.Pool) *EmergencyContactStore {
	return &EmergencyContactStore{db: db}
}

func (s *EmergencyContactStore) Create(ctx context.Context, c *domain.EmergencyContact) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO emergency_contacts (name, phone, text_line, description, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		c.Name, c.Phone, c.TextLine, c.Description, c.SortOrder, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
}

// ListActive returns active contacts in ascending sort order; ties fall back
// to insertion order so crisis output stays deterministic.
func (s *EmergencyContactStore) ListActive(ctx context.Context) ([]domain.EmergencyContact, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, phone, text_line, description, sort_order, is_active, created_at
		 FROM emergency_contacts
		 WHERE is_active = TRUE
		 ORDER BY sort_order ASC, created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts query: %w", err)
	}
	defer rows.Close()

	var contacts []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.TextLine, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
