package domain

import (
	"time"

	"github.com/google/uuid"
)

type UsageAction string

const (
	ActionAccessed   UsageAction = "accessed"
	ActionCompleted  UsageAction = "completed"
	ActionHelpful    UsageAction = "helpful"
	ActionNotHelpful UsageAction = "not_helpful"
)

func ValidUsageAction(a string) bool {
	switch UsageAction(a) {
	case ActionAccessed, ActionCompleted, ActionHelpful, ActionNotHelpful:
		return true
	}
	return false
}

// UsageEvent records that a user interacted with a catalog resource.
// Recent events feed the generation prompt so the engine avoids repeating
// what the user has just seen.
type UsageEvent struct {
	ID         uuid.UUID   `json:"id"`
	UserID     string      `json:"user_id"`
	ResourceID uuid.UUID   `json:"resource_id"`
	Action     UsageAction `json:"action"`
	CreatedAt  time.Time   `json:"created_at"`
}
