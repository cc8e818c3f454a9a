package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindwell-co/beacon/internal/domain"
)

const (
	// Safety resources always sort after every contact-based item.
	crisisResourcePriorityBase = 10
	crisisResourceMinutes      = 5
)

// staticCrisisContacts is the built-in safety net used when the contact
// directory cannot be reached. A user in crisis must never see an empty
// list, regardless of database health.
func staticCrisisContacts() []domain.EmergencyContact {
	return []domain.EmergencyContact{
		{
			Name:        "988 Suicide & Crisis Lifeline",
			Phone:       "988",
			Description: "Free, confidential support 24/7",
		},
		{
			Name:        "Crisis Text Line",
			Phone:       "741741",
			TextLine:    "Text HOME to 741741",
			Description: "Text with a trained crisis counselor",
		},
		{
			Name:        "National Domestic Violence Hotline",
			Phone:       "1-800-799-7233",
			Description: "Support for anyone affected by domestic violence",
		},
	}
}

func staticSafetyResources() []domain.Resource {
	return []domain.Resource{
		{
			Title:       "Create a Safety Plan",
			Description: "Write down warning signs, coping steps, and people you can call",
			Category:    "safety",
		},
		{
			Title:       "Grounding Techniques",
			Description: "Five-senses exercises for overwhelming moments",
			Category:    "safety",
		},
	}
}

// crisisRecommendations builds the crisis short-circuit output: emergency
// contacts first in directory order, then safety resources. No scoring,
// no time filtering, no cap. Ordering comes entirely from Priority.
func (e *RecommendationEngine) crisisRecommendations(ctx context.Context) []domain.Recommendation {
	contacts, err := e.contacts.ListActive(ctx)
	if err != nil || len(contacts) == 0 {
		if err != nil {
			e.logger.Warn("emergency contact fetch failed, using built-in list", zap.Error(err))
		}
		contacts = staticCrisisContacts()
	}

	var recs []domain.Recommendation
	for i, c := range contacts {
		description := fmt.Sprintf("Reach %s at %s", c.Name, c.Phone)
		if c.TextLine != "" {
			description = fmt.Sprintf("%s, or %s", description, c.TextLine)
		}
		recs = append(recs, domain.Recommendation{
			ID:            fmt.Sprintf("crisis-contact-%d", i+1),
			Type:          domain.TypeCrisisSupport,
			Title:         c.Name,
			Description:   description,
			Reasoning:     "immediate human support takes precedence over personalization",
			Priority:      i + 1,
			EstimatedTime: 0,
			CrisisLevel:   true,
			ActionSteps: []string{
				"Call or text the number now",
				"Speak with the counselor about what is happening",
				"Follow their guidance on next steps",
			},
		})
	}

	resources, err := e.catalog.GetEmergency(ctx)
	if err != nil || len(resources) == 0 {
		if err != nil {
			e.logger.Warn("safety resource fetch failed, using built-in list", zap.Error(err))
		}
		resources = staticSafetyResources()
	}

	for i, res := range resources {
		rec := domain.Recommendation{
			ID:            fmt.Sprintf("crisis-resource-%d", i+1),
			Type:          domain.TypeResource,
			Title:         res.Title,
			Description:   res.Description,
			Reasoning:     "safety resource for immediate use",
			Priority:      crisisResourcePriorityBase + i,
			EstimatedTime: crisisResourceMinutes,
			CrisisLevel:   true,
			ActionSteps: []string{
				"Open the resource",
				"Follow the steps it describes",
				"Keep it somewhere you can find again",
			},
		}
		if res.ID != uuid.Nil {
			id := res.ID
			rec.ResourceID = &id
		}
		recs = append(recs, rec)
	}

	return recs
}
