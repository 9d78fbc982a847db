package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

func TestSaveAndListSubmissions(t *testing.T) {
	s, err := NewContactStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewContactStorage: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	older := models.ContactPayload{
		Name: "Asha Kumari", Email: "asha@example.com", Message: "Request for a street light near the school.",
	}.Build(base)
	newer := models.ContactPayload{
		Name: "Ravi Sharma", Email: "ravi@example.com", Message: "Question about the scholarship scheme deadline.",
	}.Build(base.Add(time.Hour))

	if err := s.SaveSubmission(ctx, older); err != nil {
		t.Fatalf("SaveSubmission: %v", err)
	}
	if err := s.SaveSubmission(ctx, newer); err != nil {
		t.Fatalf("SaveSubmission: %v", err)
	}

	subs, err := s.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("got %d submissions, want 2", len(subs))
	}
	if subs[0].Name != "Ravi Sharma" {
		t.Errorf("submissions not newest-first, got %q first", subs[0].Name)
	}
	if subs[0].Status != "new" {
		t.Errorf("status = %q, want new", subs[0].Status)
	}
}

func TestListEmptyStorage(t *testing.T) {
	s, err := NewContactStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewContactStorage: %v", err)
	}
	subs, err := s.ListSubmissions(context.Background())
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("got %d submissions from empty storage", len(subs))
	}
}
