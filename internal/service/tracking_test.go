package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mindwell-co/beacon/internal/domain"
)

func TestTrackUsage_Validation(t *testing.T) {
	engine, _, _, _, _ := setupEngineTest()
	ctx := context.Background()

	if err := engine.TrackUsage(ctx, "", "rec-1", domain.ActionAccessed); err != ErrUserIDMissing {
		t.Fatalf("expected ErrUserIDMissing, got %v", err)
	}
	if err := engine.TrackUsage(ctx, "u1", "", domain.ActionAccessed); err != ErrRecommendationIDMissing {
		t.Fatalf("expected ErrRecommendationIDMissing, got %v", err)
	}
	if err := engine.TrackUsage(ctx, "u1", "rec-1", "bookmarked"); err != ErrInvalidUsageAction {
		t.Fatalf("expected ErrInvalidUsageAction, got %v", err)
	}
}

func TestTrackUsage_ActionMapping(t *testing.T) {
	tests := []struct {
		action       domain.UsageAction
		wantAccessed *bool
		wantHelpful  *bool
	}{
		{domain.ActionAccessed, boolPtr(true), nil},
		{domain.ActionCompleted, boolPtr(true), nil},
		{domain.ActionHelpful, nil, boolPtr(true)},
		{domain.ActionNotHelpful, nil, boolPtr(false)},
	}

	for _, tt := range tests {
		engine, _, _, recStore, _ := setupEngineTest()

		if err := engine.TrackUsage(context.Background(), "u1", "rec-1", tt.action); err != nil {
			t.Fatalf("%s: expected no error, got %v", tt.action, err)
		}

		patch, ok := recStore.patches["rec-1"]
		if !ok {
			t.Fatalf("%s: expected a feedback patch", tt.action)
		}
		if !boolPtrEqual(patch.WasAccessed, tt.wantAccessed) {
			t.Fatalf("%s: unexpected was_accessed patch", tt.action)
		}
		if !boolPtrEqual(patch.WasHelpful, tt.wantHelpful) {
			t.Fatalf("%s: unexpected was_helpful patch", tt.action)
		}
	}
}

func TestTrackUsage_StoreFailureIsAbsorbed(t *testing.T) {
	engine, _, _, recStore, _ := setupEngineTest()
	recStore.updateErr = errors.New("update failed")

	if err := engine.TrackUsage(context.Background(), "u1", "rec-1", domain.ActionHelpful); err != nil {
		t.Fatalf("expected store failure to be absorbed, got %v", err)
	}
}

func boolPtr(b bool) *bool { return &b }

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
