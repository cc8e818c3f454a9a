package domain

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyCrisis UrgencyLevel = "crisis"
)

func ValidUrgencyLevel(u string) bool {
	switch UrgencyLevel(u) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCrisis:
		return true
	}
	return false
}

type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

func ValidEngagementLevel(e string) bool {
	switch EngagementLevel(e) {
	case EngagementLow, EngagementMedium, EngagementHigh:
		return true
	}
	return false
}

// Effective returns the engagement level with the medium default applied.
func (e EngagementLevel) Effective() EngagementLevel {
	if e == "" {
		return EngagementMedium
	}
	return e
}

// MentalHealthProfile carries advisory free-text hints about a user.
// Every field may be empty; nothing here is required for correctness.
type MentalHealthProfile struct {
	PrimaryConcerns   []string `json:"primary_concerns,omitempty"`
	CurrentChallenges []string `json:"current_challenges,omitempty"`
}

type BehaviorPatterns struct {
	PreferredResourceTypes []string        `json:"preferred_resource_types,omitempty"`
	EngagementLevel        EngagementLevel `json:"engagement_level,omitempty"`
}

// UserProfile identifies a user and the hints used for personalization.
// UserID is an opaque identifier owned by the surrounding platform and is
// immutable once assigned.
type UserProfile struct {
	UserID              string              `json:"user_id"`
	MentalHealthProfile MentalHealthProfile `json:"mental_health_profile,omitempty"`
	BehaviorPatterns    BehaviorPatterns    `json:"behavior_patterns,omitempty"`
}

// SituationalContext describes the moment a recommendation request is made.
// TimeAvailable is in minutes; zero means unset (unlimited for filtering,
// 30 in the generation prompt).
type SituationalContext struct {
	CurrentMood   string       `json:"current_mood,omitempty"`
	UrgencyLevel  UrgencyLevel `json:"urgency_level"`
	TimeAvailable int          `json:"time_available,omitempty"`
	Environment   string       `json:"environment,omitempty"`
	SessionGoals  []string     `json:"session_goals,omitempty"`
}
