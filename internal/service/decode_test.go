package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestDecodeCandidates_Valid(t *testing.T) {
	resourceID := uuid.New()
	raw := `{"recommendations":[
		{"id":"c1","type":"coaching","title":"Check In","description":"A short self check-in","reasoning":"matches goals","priority":1,"estimated_time":5,"resource_id":"` + resourceID.String() + `","action_steps":["Sit down","Reflect"],"follow_up_suggestions":["Journal"]}
	]}`

	recs, err := decodeCandidates(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	r := recs[0]
	if r.ID != "ai-c1" {
		t.Fatalf("expected ai- prefix, got %s", r.ID)
	}
	if r.ResourceID == nil || *r.ResourceID != resourceID {
		t.Fatal("expected resource ID to be parsed")
	}
	if len(r.ActionSteps) != 2 || len(r.FollowUpSuggestions) != 1 {
		t.Fatalf("unexpected steps: %v / %v", r.ActionSteps, r.FollowUpSuggestions)
	}
}

func TestDecodeCandidates_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"recommendations\":[{\"id\":\"c1\",\"type\":\"activity\",\"title\":\"T\",\"description\":\"D\",\"priority\":1,\"estimated_time\":5}]}\n```"

	recs, err := decodeCandidates(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
}

func TestDecodeCandidates_InvalidJSON(t *testing.T) {
	if _, err := decodeCandidates("sure, here are some ideas"); err == nil {
		t.Fatal("expected an error for non-JSON output")
	}
}

func TestDecodeCandidates_MissingArray(t *testing.T) {
	if _, err := decodeCandidates(`{"suggestions":[]}`); err == nil {
		t.Fatal("expected an error when the recommendations array is absent")
	}
}

func TestDecodeCandidates_EmptyArrayIsNotAnError(t *testing.T) {
	recs, err := decodeCandidates(`{"recommendations":[]}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d", len(recs))
	}
}

func TestDecodeCandidates_OneBadEntryFailsBatch(t *testing.T) {
	raw := `{"recommendations":[
		{"id":"ok","type":"activity","title":"T","description":"D","priority":1,"estimated_time":5},
		{"id":"bad","type":"activity","title":"","description":"D","priority":1,"estimated_time":5}
	]}`

	if _, err := decodeCandidates(raw); err == nil {
		t.Fatal("expected the whole batch to fail on one invalid entry")
	}
}

func TestDecodeCandidates_RejectsBadPriority(t *testing.T) {
	raw := `{"recommendations":[{"id":"c","type":"activity","title":"T","description":"D","priority":0,"estimated_time":5}]}`
	if _, err := decodeCandidates(raw); err == nil {
		t.Fatal("expected an error for priority 0")
	}
}

func TestDecodeCandidates_RejectsNegativeTime(t *testing.T) {
	raw := `{"recommendations":[{"id":"c","type":"activity","title":"T","description":"D","priority":1,"estimated_time":-5}]}`
	if _, err := decodeCandidates(raw); err == nil {
		t.Fatal("expected an error for negative estimated_time")
	}
}

func TestDecodeCandidates_RejectsBadResourceID(t *testing.T) {
	raw := `{"recommendations":[{"id":"c","type":"activity","title":"T","description":"D","priority":1,"estimated_time":5,"resource_id":"not-a-uuid"}]}`
	_, err := decodeCandidates(raw)
	if err == nil {
		t.Fatal("expected an error for an unparseable resource_id")
	}
	if !strings.Contains(err.Error(), "resource_id") {
		t.Fatalf("expected resource_id in error, got %v", err)
	}
}
