package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationType is an open string enum. The constants below are the
// types the engine itself emits; AI-generated candidates may carry others.
type RecommendationType string

const (
	TypeCrisisSupport RecommendationType = "crisis_support"
	TypeResource      RecommendationType = "resource"
	TypeActivity      RecommendationType = "activity"
	TypeCoaching      RecommendationType = "coaching"
	TypeDailyPractice RecommendationType = "daily_practice"
	TypeWeeklyGoal    RecommendationType = "weekly_goal"
)

// Recommendation is the engine's ephemeral output unit. The ID prefix marks
// provenance (crisis-, fallback-, ai-), not semantics. PersonalizedScore is
// attached during ranking and is zero on the crisis path.
type Recommendation struct {
	ID                  string             `json:"id"`
	Type                RecommendationType `json:"type"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Reasoning           string             `json:"reasoning"`
	Priority            int                `json:"priority"`
	EstimatedTime       int                `json:"estimated_time"`
	ResourceID          *uuid.UUID         `json:"resource_id,omitempty"`
	ActionSteps         []string           `json:"action_steps,omitempty"`
	FollowUpSuggestions []string           `json:"follow_up_suggestions,omitempty"`
	CrisisLevel         bool               `json:"crisis_level"`
	PersonalizedScore   int                `json:"personalized_score"`
}

// RecommendationRecord is the persisted form of a generated recommendation.
// WasAccessed and WasHelpful start unset and are mutated by usage tracking;
// rows are append-only from the engine's perspective and never deleted by it.
type RecommendationRecord struct {
	ID               uuid.UUID  `json:"id"`
	UserID           string     `json:"user_id"`
	RecommendationID string     `json:"recommendation_id"`
	ResourceID       *uuid.UUID `json:"resource_id,omitempty"`
	Score            int        `json:"score"`
	ReasoningTags    []string   `json:"reasoning_tags,omitempty"`
	AlgorithmVersion string     `json:"algorithm_version"`
	WasAccessed      *bool      `json:"was_accessed,omitempty"`
	WasHelpful       *bool      `json:"was_helpful,omitempty"`
	GeneratedAt      time.Time  `json:"generated_at"`
}

// FeedbackPatch is a partial update applied to a persisted recommendation.
// Nil fields are left untouched.
type FeedbackPatch struct {
	WasAccessed *bool
	WasHelpful  *bool
}
