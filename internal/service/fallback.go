package service

import (
	"fmt"

	"github.com/mindwell-co/beacon/internal/domain"
)

const (
	maxFallbackResources    = 3
	fallbackResourceMinutes = 15
	mindfulnessPriority     = 4
	mindfulnessMinutes      = 5
)

// FallbackRecommender produces a usable recommendation set from local data
// only. It is the path of record whenever the text generator is absent,
// times out, or returns something unusable.
type FallbackRecommender struct{}

func NewFallbackRecommender() *FallbackRecommender {
	return &FallbackRecommender{}
}

// Recommend wraps up to three featured resources in pool order, then appends
// the fixed mindfulness activity. The fixed item guarantees a non-empty
// result even when the pool is empty.
func (f *FallbackRecommender) Recommend(pool []domain.Resource) []domain.Recommendation {
	var recs []domain.Recommendation

	for i, res := range pool {
		if i >= maxFallbackResources {
			break
		}
		id := res.ID
		recs = append(recs, domain.Recommendation{
			ID:            fmt.Sprintf("fallback-resource-%d", i+1),
			Type:          domain.TypeResource,
			Title:         res.Title,
			Description:   res.Description,
			Reasoning:     "highly rated resource for general wellness support",
			Priority:      i + 1,
			EstimatedTime: fallbackResourceMinutes,
			ResourceID:    &id,
			ActionSteps: []string{
				"Open the resource and skim its overview",
				"Work through the material at your own pace",
				"Note anything you want to revisit later",
			},
			FollowUpSuggestions: []string{
				"Explore related resources in the library",
				"Let your coach know whether this helped",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:            "fallback-mindfulness",
		Type:          domain.TypeActivity,
		Title:         "Brief Mindfulness Practice",
		Description:   "A short guided breathing exercise to help you feel centered",
		Reasoning:     "mindfulness fits any schedule and supports most wellness goals",
		Priority:      mindfulnessPriority,
		EstimatedTime: mindfulnessMinutes,
		ActionSteps: []string{
			"Find a quiet spot and sit comfortably",
			"Breathe in for four counts, hold for four, out for six",
			"Repeat for five minutes, noticing how you feel",
		},
		FollowUpSuggestions: []string{
			"Try extending the practice to ten minutes tomorrow",
			"Pair the exercise with a daily routine you already have",
		},
	})

	return recs
}
