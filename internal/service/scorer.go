package service

import (
	"sort"
	"strings"

	"github.com/mindwell-co/beacon/internal/domain"
)

// Scoring weights. The sum is kept raw, with no normalization or capping,
// so ties and orderings stay explainable from the individual bonuses.
const (
	ConcernKeywordBonus    = 10
	PreferredTypeBonus     = 15
	TimeFitBonus           = 10
	HighUrgencyBonus       = 20
	HighUrgencyMaxPriority = 3
)

// PersonalizationScorer computes the additive affinity score used to rank
// non-crisis recommendations.
type PersonalizationScorer struct{}

func NewPersonalizationScorer() *PersonalizationScorer {
	return &PersonalizationScorer{}
}

// concernKeywordBonus grants ConcernKeywordBonus when the description
// mentions the keyword and the profile lists any primary concern. The gate
// is the presence of concerns, not their content; see scorer_test.go before
// changing the coupling.
func concernKeywordBonus(rec domain.Recommendation, profile domain.UserProfile, keyword string) int {
	if len(profile.MentalHealthProfile.PrimaryConcerns) == 0 {
		return 0
	}
	if !strings.Contains(strings.ToLower(rec.Description), keyword) {
		return 0
	}
	return ConcernKeywordBonus
}

// preferredTypeBonus grants PreferredTypeBonus when the recommendation type
// appears in the profile's preferred resource types.
func preferredTypeBonus(rec domain.Recommendation, profile domain.UserProfile) int {
	for _, t := range profile.BehaviorPatterns.PreferredResourceTypes {
		if t == string(rec.Type) {
			return PreferredTypeBonus
		}
	}
	return 0
}

// timeFitBonus grants TimeFitBonus when the user declared a time budget and
// the recommendation fits inside it. An unset budget (zero) grants nothing.
func timeFitBonus(rec domain.Recommendation, sctx domain.SituationalContext) int {
	if sctx.TimeAvailable <= 0 {
		return 0
	}
	if rec.EstimatedTime > sctx.TimeAvailable {
		return 0
	}
	return TimeFitBonus
}

// urgencyPriorityBonus grants HighUrgencyBonus to top-priority items when
// the situation is high urgency (crisis is handled elsewhere entirely).
func urgencyPriorityBonus(rec domain.Recommendation, sctx domain.SituationalContext) int {
	if sctx.UrgencyLevel != domain.UrgencyHigh {
		return 0
	}
	if rec.Priority > HighUrgencyMaxPriority {
		return 0
	}
	return HighUrgencyBonus
}

func (s *PersonalizationScorer) Score(rec domain.Recommendation, profile domain.UserProfile, sctx domain.SituationalContext) int {
	score := 0
	score += concernKeywordBonus(rec, profile, "anxiety")
	score += concernKeywordBonus(rec, profile, "depression")
	score += preferredTypeBonus(rec, profile)
	score += timeFitBonus(rec, sctx)
	score += urgencyPriorityBonus(rec, sctx)
	return score
}

// ScoreAndRank attaches personalized scores and sorts the candidates into
// final display order: crisis-flagged items first, then higher score, then
// lower priority.
// The sort is stable so equal candidates keep their generation order.
func (s *PersonalizationScorer) ScoreAndRank(recs []domain.Recommendation, profile domain.UserProfile, sctx domain.SituationalContext) []domain.Recommendation {
	for i := range recs {
		recs[i].PersonalizedScore = s.Score(recs[i], profile, sctx)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].CrisisLevel != recs[j].CrisisLevel {
			return recs[i].CrisisLevel
		}
		if recs[i].PersonalizedScore != recs[j].PersonalizedScore {
			return recs[i].PersonalizedScore > recs[j].PersonalizedScore
		}
		return recs[i].Priority < recs[j].Priority
	})

	return recs
}
