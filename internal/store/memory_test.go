package store

import (
	"context"
	"testing"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

var seedNow = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func seededStore() *Memory {
	return NewMemory(Seed(seedNow))
}

func TestNewsPublishedFilterAndLimit(t *testing.T) {
	m := seededStore()

	all, err := m.News(context.Background(), NewsQuery{})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 seeded news items, got %d", len(all))
	}

	got, err := m.News(context.Background(), NewsQuery{PublishedOnly: true, Limit: 2})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for _, n := range got {
		if !n.Published {
			t.Errorf("item %s is not published", n.ID)
		}
	}
	if got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Error("news not sorted by createdAt descending")
	}
}

func TestNewsBySlugOnlyMatchesPublished(t *testing.T) {
	m := seededStore()

	if _, err := m.NewsBySlug(context.Background(), "free-health-camp-2000-patients"); err != nil {
		t.Errorf("published slug lookup failed: %v", err)
	}
	if _, err := m.NewsBySlug(context.Background(), "water-supply-upgrade-draft"); err != ErrNotFound {
		t.Errorf("unpublished slug lookup: got %v, want ErrNotFound", err)
	}
	if _, err := m.NewsBySlug(context.Background(), "no-such-slug"); err != ErrNotFound {
		t.Errorf("unknown slug lookup: got %v, want ErrNotFound", err)
	}
}

func TestEventsUpcomingBoundary(t *testing.T) {
	now := seedNow
	m := NewMemory(Data{Events: []models.Event{
		{ID: "e-now", Date: now, Status: models.EventUpcoming},
		{ID: "e-past", Date: now.Add(-time.Hour), Status: models.EventUpcoming},
		{ID: "e-future", Date: now.Add(time.Hour), Status: models.EventUpcoming},
		{ID: "e-cancelled", Date: now.Add(time.Hour), Status: models.EventCancelled},
	}})

	got, err := m.Events(context.Background(), EventQuery{
		Status:    models.EventUpcoming,
		NotBefore: now,
	})
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// An event dated exactly now is included, and events sort by date ascending.
	if got[0].ID != "e-now" || got[1].ID != "e-future" {
		t.Errorf("got order %s, %s; want e-now, e-future", got[0].ID, got[1].ID)
	}
}

func TestAchievementsSortedByYearDescStable(t *testing.T) {
	m := NewMemory(Data{Achievements: []models.Achievement{
		{ID: "a-1", Year: 2023},
		{ID: "a-2", Year: 2024},
		{ID: "a-3", Year: 2023},
	}})

	got, err := m.Achievements(context.Background(), AchievementQuery{})
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	want := []string{"a-2", "a-1", "a-3"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s (ties must keep store order)", i, got[i].ID, id)
		}
	}
}

func TestListingIsIdempotent(t *testing.T) {
	m := seededStore()

	first, err := m.News(context.Background(), NewsQuery{PublishedOnly: true})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	second, err := m.News(context.Background(), NewsQuery{PublishedOnly: true})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ between identical reads: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs between identical reads: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestFeaturedPhotos(t *testing.T) {
	m := seededStore()

	got, err := m.Photos(context.Background(), PhotoQuery{FeaturedOnly: true, Limit: 4})
	if err != nil {
		t.Fatalf("Photos: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected featured photos in seed data")
	}
	for _, p := range got {
		if !p.Featured {
			t.Errorf("photo %s is not featured", p.ID)
		}
		if p.ImageURL == "" {
			t.Errorf("photo %s has no image URL", p.ID)
		}
	}
}
