package store

import (
	"context"
	"sort"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

// Memory is the seed-backed ContentSource. The collections are fixed at
// construction and never mutated afterwards, so reads need no locking.
type Memory struct {
	news         []models.News
	photos       []models.Photo
	videos       []models.Video
	events       []models.Event
	achievements []models.Achievement
}

// Data is the full set of collections a Memory store is built from.
type Data struct {
	News         []models.News
	Photos       []models.Photo
	Videos       []models.Video
	Events       []models.Event
	Achievements []models.Achievement
}

// NewMemory builds a read-only store over the given collections.
func NewMemory(data Data) *Memory {
	return &Memory{
		news:         data.News,
		photos:       data.Photos,
		videos:       data.Videos,
		events:       data.Events,
		achievements: data.Achievements,
	}
}

func (m *Memory) News(ctx context.Context, q NewsQuery) ([]models.News, error) {
	out := make([]models.News, 0, len(m.news))
	for _, n := range m.news {
		if q.PublishedOnly && !n.Published {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return truncate(out, q.Limit), nil
}

func (m *Memory) NewsByID(ctx context.Context, id string) (models.News, error) {
	for _, n := range m.news {
		if n.ID == id {
			return n, nil
		}
	}
	return models.News{}, ErrNotFound
}

func (m *Memory) NewsBySlug(ctx context.Context, slug string) (models.News, error) {
	for _, n := range m.news {
		if n.Slug == slug && n.Published {
			return n, nil
		}
	}
	return models.News{}, ErrNotFound
}

func (m *Memory) Photos(ctx context.Context, q PhotoQuery) ([]models.Photo, error) {
	out := make([]models.Photo, 0, len(m.photos))
	for _, p := range m.photos {
		if q.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return truncate(out, q.Limit), nil
}

func (m *Memory) Videos(ctx context.Context, q VideoQuery) ([]models.Video, error) {
	out := make([]models.Video, 0, len(m.videos))
	for _, v := range m.videos {
		if q.FeaturedOnly && !v.Featured {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return truncate(out, q.Limit), nil
}

func (m *Memory) Events(ctx context.Context, q EventQuery) ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		if !q.NotBefore.IsZero() && e.Date.Before(q.NotBefore) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return truncate(out, q.Limit), nil
}

func (m *Memory) Achievements(ctx context.Context, q AchievementQuery) ([]models.Achievement, error) {
	out := make([]models.Achievement, len(m.achievements))
	copy(out, m.achievements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return truncate(out, q.Limit), nil
}

// Counts returns the size of every collection, for the admin dashboard.
func (m *Memory) Counts() map[string]int {
	return map[string]int{
		"news":         len(m.news),
		"photos":       len(m.photos),
		"videos":       len(m.videos),
		"events":       len(m.events),
		"achievements": len(m.achievements),
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
