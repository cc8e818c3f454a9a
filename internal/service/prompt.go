package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindwell-co/beacon/internal/domain"
)

// defaultPromptMinutes is used in the prompt when the caller left the time
// budget unset. It only shapes generation; scoring treats unset as unset.
const defaultPromptMinutes = 30

const recommendationPrompt = `You are a wellness recommendation assistant for a coaching platform. Suggest 5-7 personalized recommendations for this user.

User profile:
- Primary concerns: %s
- Current challenges: %s
- Preferred resource types: %s
- Engagement level: %s

Current situation:
- Mood: %s
- Urgency: %s
- Time available: %d minutes
- Environment: %s
- Session goals: %s

Available resources:
%s
Recently used resources (avoid repeating these):
%s
Respond ONLY with JSON, no markdown fences:
{"recommendations":[{"id":"string","type":"resource|activity|coaching|daily_practice|weekly_goal","title":"string","description":"string","reasoning":"string","priority":1,"estimated_time":10,"resource_id":"uuid or omit","action_steps":["step"],"follow_up_suggestions":["suggestion"]}]}

Rules: priority is 1 (highest) to 7; estimated_time is minutes and must fit the user's available time where possible; resource_id must reference a listed resource or be omitted.`

func buildRecommendationPrompt(profile domain.UserProfile, sctx domain.SituationalContext, pool []domain.Resource, history []domain.UsageEvent) string {
	minutes := sctx.TimeAvailable
	if minutes <= 0 {
		minutes = defaultPromptMinutes
	}

	var poolText strings.Builder
	if len(pool) == 0 {
		poolText.WriteString("- none\n")
	}
	for _, r := range pool {
		fmt.Fprintf(&poolText, "- [%s] %s (%s): %s\n", r.ID, r.Title, r.ResourceType, r.Description)
	}

	titles := make(map[uuid.UUID]string, len(pool))
	for _, r := range pool {
		titles[r.ID] = r.Title
	}

	var historyText strings.Builder
	if len(history) == 0 {
		historyText.WriteString("- none\n")
	}
	for _, e := range history {
		name := titles[e.ResourceID]
		if name == "" {
			name = e.ResourceID.String()
		}
		fmt.Fprintf(&historyText, "- %s (%s)\n", name, e.Action)
	}

	return fmt.Sprintf(recommendationPrompt,
		listOrNone(profile.MentalHealthProfile.PrimaryConcerns),
		listOrNone(profile.MentalHealthProfile.CurrentChallenges),
		listOrNone(profile.BehaviorPatterns.PreferredResourceTypes),
		profile.BehaviorPatterns.EngagementLevel.Effective(),
		textOrNone(sctx.CurrentMood),
		sctx.UrgencyLevel,
		minutes,
		textOrNone(sctx.Environment),
		listOrNone(sctx.SessionGoals),
		poolText.String(),
		historyText.String(),
	)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func textOrNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
