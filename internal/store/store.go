// Package store provides read access to the site's content collections.
//
// ContentSource has two implementations: a seed-backed in-memory store and a
// remote-backed client for an upstream content API. Which one serves a
// deployment is decided at construction time; Failover composes the two so
// an unreachable upstream degrades to seed data instead of an error page.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

// ErrNotFound is returned by lookups that match no entity.
var ErrNotFound = errors.New("not found")

// NewsQuery narrows a news listing. Results are always sorted by CreatedAt
// descending. Limit <= 0 means no limit.
type NewsQuery struct {
	PublishedOnly bool
	Limit         int
}

// PhotoQuery narrows a photo listing, sorted by CreatedAt descending.
type PhotoQuery struct {
	FeaturedOnly bool
	Limit        int
}

// VideoQuery narrows a video listing, sorted by CreatedAt descending.
type VideoQuery struct {
	FeaturedOnly bool
	Limit        int
}

// EventQuery narrows an event listing, sorted by Date ascending. NotBefore,
// when set, keeps only events whose date is at or after it (an event dated
// exactly NotBefore is included).
type EventQuery struct {
	Status    models.EventStatus
	NotBefore time.Time
	Limit     int
}

// AchievementQuery narrows an achievement listing, sorted by Year descending.
type AchievementQuery struct {
	Limit int
}

// ContentSource is the read contract over the five content collections.
// Listings apply filter, then a stable sort, then the limit; ties keep the
// store's original order.
type ContentSource interface {
	News(ctx context.Context, q NewsQuery) ([]models.News, error)
	NewsByID(ctx context.Context, id string) (models.News, error)
	NewsBySlug(ctx context.Context, slug string) (models.News, error)
	Photos(ctx context.Context, q PhotoQuery) ([]models.Photo, error)
	Videos(ctx context.Context, q VideoQuery) ([]models.Video, error)
	Events(ctx context.Context, q EventQuery) ([]models.Event, error)
	Achievements(ctx context.Context, q AchievementQuery) ([]models.Achievement, error)
}
