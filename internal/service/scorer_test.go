package service

import (
	"testing"

	"github.com/mindwell-co/beacon/internal/domain"
)

func TestScorer_NoSignalsScoresZero(t *testing.T) {
	s := NewPersonalizationScorer()

	rec := domain.Recommendation{Description: "A neutral suggestion", Priority: 1, EstimatedTime: 10}
	got := s.Score(rec, domain.UserProfile{}, domain.SituationalContext{})
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScorer_ConcernKeywordRequiresConcerns(t *testing.T) {
	s := NewPersonalizationScorer()
	rec := domain.Recommendation{Description: "Working through anxiety step by step", Priority: 5}

	// Keyword present but no concerns listed: no bonus.
	got := s.Score(rec, domain.UserProfile{}, domain.SituationalContext{})
	if got != 0 {
		t.Fatalf("expected 0 without concerns, got %d", got)
	}

	// Any concern opens the gate, even one unrelated to the keyword.
	profile := domain.UserProfile{
		MentalHealthProfile: domain.MentalHealthProfile{PrimaryConcerns: []string{"sleep"}},
	}
	got = s.Score(rec, profile, domain.SituationalContext{})
	if got != ConcernKeywordBonus {
		t.Fatalf("expected %d with concerns present, got %d", ConcernKeywordBonus, got)
	}
}

func TestScorer_BothKeywordsStack(t *testing.T) {
	s := NewPersonalizationScorer()
	rec := domain.Recommendation{Description: "For anxiety and depression alike", Priority: 5}
	profile := domain.UserProfile{
		MentalHealthProfile: domain.MentalHealthProfile{PrimaryConcerns: []string{"anxiety"}},
	}

	got := s.Score(rec, profile, domain.SituationalContext{})
	if got != 2*ConcernKeywordBonus {
		t.Fatalf("expected %d, got %d", 2*ConcernKeywordBonus, got)
	}
}

func TestScorer_KeywordMatchIsCaseInsensitive(t *testing.T) {
	s := NewPersonalizationScorer()
	rec := domain.Recommendation{Description: "Anxiety relief in five minutes", Priority: 5}
	profile := domain.UserProfile{
		MentalHealthProfile: domain.MentalHealthProfile{PrimaryConcerns: []string{"anxiety"}},
	}

	got := s.Score(rec, profile, domain.SituationalContext{})
	if got != ConcernKeywordBonus {
		t.Fatalf("expected %d, got %d", ConcernKeywordBonus, got)
	}
}

func TestScorer_PreferredTypeBonus(t *testing.T) {
	s := NewPersonalizationScorer()
	rec := domain.Recommendation{Type: domain.TypeActivity, Description: "Neutral", Priority: 5}
	profile := domain.UserProfile{
		BehaviorPatterns: domain.BehaviorPatterns{PreferredResourceTypes: []string{"activity", "coaching"}},
	}

	got := s.Score(rec, profile, domain.SituationalContext{})
	if got != PreferredTypeBonus {
		t.Fatalf("expected %d, got %d", PreferredTypeBonus, got)
	}

	rec.Type = domain.TypeResource
	got = s.Score(rec, profile, domain.SituationalContext{})
	if got != 0 {
		t.Fatalf("expected 0 for unlisted type, got %d", got)
	}
}

func TestScorer_TimeFitBonus(t *testing.T) {
	s := NewPersonalizationScorer()
	rec := domain.Recommendation{Description: "Neutral", Priority: 5, EstimatedTime: 10}

	// Unset budget grants nothing.
	if got := s.Score(rec, domain.UserProfile{}, domain.SituationalContext{}); got != 0 {
		t.Fatalf("expected 0 with unset budget, got %d", got)
	}

	// Fits exactly.
	sctx := domain.SituationalContext{TimeAvailable: 10}
	if got := s.Score(rec, domain.UserProfile{}, sctx); got != TimeFitBonus {
		t.Fatalf("expected %d for exact fit, got %d", TimeFitBonus, got)
	}

	// Exceeds the budget.
	sctx.TimeAvailable = 9
	if got := s.Score(rec, domain.UserProfile{}, sctx); got != 0 {
		t.Fatalf("expected 0 when over budget, got %d", got)
	}
}

func TestScorer_HighUrgencyBoostsTopPriority(t *testing.T) {
	s := NewPersonalizationScorer()
	sctx := domain.SituationalContext{UrgencyLevel: domain.UrgencyHigh}

	rec := domain.Recommendation{Description: "Neutral", Priority: HighUrgencyMaxPriority}
	if got := s.Score(rec, domain.UserProfile{}, sctx); got != HighUrgencyBonus {
		t.Fatalf("expected %d at priority %d, got %d", HighUrgencyBonus, HighUrgencyMaxPriority, got)
	}

	rec.Priority = HighUrgencyMaxPriority + 1
	if got := s.Score(rec, domain.UserProfile{}, sctx); got != 0 {
		t.Fatalf("expected 0 past the priority cutoff, got %d", got)
	}

	rec.Priority = 1
	sctx.UrgencyLevel = domain.UrgencyMedium
	if got := s.Score(rec, domain.UserProfile{}, sctx); got != 0 {
		t.Fatalf("expected 0 at medium urgency, got %d", got)
	}
}

func TestScorer_MatchingAttributeNeverLowersRank(t *testing.T) {
	s := NewPersonalizationScorer()
	base := domain.Recommendation{Type: domain.TypeResource, Description: "Neutral", Priority: 5, EstimatedTime: 10}
	boosted := base
	boosted.Type = domain.TypeActivity

	profile := domain.UserProfile{
		BehaviorPatterns: domain.BehaviorPatterns{PreferredResourceTypes: []string{"activity"}},
	}
	sctx := domain.SituationalContext{TimeAvailable: 30}

	baseScore := s.Score(base, profile, sctx)
	boostedScore := s.Score(boosted, profile, sctx)
	if boostedScore <= baseScore {
		t.Fatalf("expected matching type to raise the score: %d vs %d", boostedScore, baseScore)
	}
	if boostedScore-baseScore != PreferredTypeBonus {
		t.Fatalf("expected a %d point difference, got %d", PreferredTypeBonus, boostedScore-baseScore)
	}
}

func TestScoreAndRank_Ordering(t *testing.T) {
	s := NewPersonalizationScorer()
	profile := domain.UserProfile{
		MentalHealthProfile: domain.MentalHealthProfile{PrimaryConcerns: []string{"anxiety"}},
	}
	sctx := domain.SituationalContext{UrgencyLevel: domain.UrgencyLow}

	recs := []domain.Recommendation{
		{ID: "plain", Description: "Neutral", Priority: 1},
		{ID: "crisis", Description: "Neutral", Priority: 9, CrisisLevel: true},
		{ID: "scored", Description: "About anxiety", Priority: 3},
	}

	ranked := s.ScoreAndRank(recs, profile, sctx)

	if ranked[0].ID != "crisis" {
		t.Fatalf("expected crisis item first, got %s", ranked[0].ID)
	}
	if ranked[1].ID != "scored" {
		t.Fatalf("expected scored item second, got %s", ranked[1].ID)
	}
	if ranked[2].ID != "plain" {
		t.Fatalf("expected plain item last, got %s", ranked[2].ID)
	}
}

func TestScoreAndRank_EqualItemsKeepGenerationOrder(t *testing.T) {
	s := NewPersonalizationScorer()

	recs := []domain.Recommendation{
		{ID: "first", Description: "Neutral", Priority: 2},
		{ID: "second", Description: "Neutral", Priority: 2},
	}

	ranked := s.ScoreAndRank(recs, domain.UserProfile{}, domain.SituationalContext{})
	if ranked[0].ID != "first" || ranked[1].ID != "second" {
		t.Fatalf("expected stable order, got %s then %s", ranked[0].ID, ranked[1].ID)
	}
}
