package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mindwell-co/beacon/internal/domain"
)

func TestBuildRecommendationPrompt_IncludesProfileAndSituation(t *testing.T) {
	profile := domain.UserProfile{
		UserID: "u1",
		MentalHealthProfile: domain.MentalHealthProfile{
			PrimaryConcerns:   []string{"anxiety", "sleep"},
			CurrentChallenges: []string{"work stress"},
		},
		BehaviorPatterns: domain.BehaviorPatterns{
			PreferredResourceTypes: []string{"activity"},
		},
	}
	sctx := domain.SituationalContext{
		CurrentMood:   "tense",
		UrgencyLevel:  domain.UrgencyMedium,
		TimeAvailable: 15,
		SessionGoals:  []string{"wind down"},
	}

	prompt := buildRecommendationPrompt(profile, sctx, nil, nil)

	for _, want := range []string{"anxiety, sleep", "work stress", "activity", "tense", "medium", "15 minutes", "wind down"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildRecommendationPrompt_Defaults(t *testing.T) {
	prompt := buildRecommendationPrompt(domain.UserProfile{UserID: "u1"}, domain.SituationalContext{UrgencyLevel: domain.UrgencyLow}, nil, nil)

	if !strings.Contains(prompt, "30 minutes") {
		t.Fatal("expected unset time budget to default to 30 minutes in the prompt")
	}
	if !strings.Contains(prompt, "Engagement level: medium") {
		t.Fatal("expected unset engagement level to default to medium")
	}
	if strings.Count(prompt, "- none") != 2 {
		t.Fatalf("expected empty pool and history placeholders, got %d", strings.Count(prompt, "- none"))
	}
}

func TestBuildRecommendationPrompt_ListsPoolAndHistory(t *testing.T) {
	resourceID := uuid.New()
	pool := []domain.Resource{
		{ID: resourceID, Title: "Grounding Exercise", ResourceType: "exercise", Description: "Five senses technique"},
	}
	history := []domain.UsageEvent{
		{ResourceID: resourceID, Action: domain.ActionCompleted},
	}

	prompt := buildRecommendationPrompt(domain.UserProfile{UserID: "u1"}, domain.SituationalContext{UrgencyLevel: domain.UrgencyLow}, pool, history)

	if !strings.Contains(prompt, "Grounding Exercise") {
		t.Fatal("expected pool resource in prompt")
	}
	if !strings.Contains(prompt, resourceID.String()) {
		t.Fatal("expected resource ID in prompt")
	}
	if !strings.Contains(prompt, "Grounding Exercise (completed)") {
		t.Fatal("expected history entry to use the resource title")
	}
}

func TestBuildRecommendationPrompt_UnknownHistoryFallsBackToID(t *testing.T) {
	resourceID := uuid.New()
	history := []domain.UsageEvent{
		{ResourceID: resourceID, Action: domain.ActionAccessed},
	}

	prompt := buildRecommendationPrompt(domain.UserProfile{UserID: "u1"}, domain.SituationalContext{UrgencyLevel: domain.UrgencyLow}, nil, history)

	if !strings.Contains(prompt, resourceID.String()+" (accessed)") {
		t.Fatal("expected history entry to fall back to the resource ID")
	}
}
