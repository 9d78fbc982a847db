package store

import (
	"context"
	"errors"

	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/models"
)

// Failover serves reads from a primary source and degrades to a fallback
// when the primary is unreachable. NotFound is a definitive answer, not an
// outage, so it is never retried against the fallback.
type Failover struct {
	primary  ContentSource
	fallback ContentSource
}

func NewFailover(primary, fallback ContentSource) *Failover {
	return &Failover{primary: primary, fallback: fallback}
}

func failover[T any](f *Failover, ctx context.Context, what string,
	read func(ContentSource) (T, error)) (T, error) {

	out, err := read(f.primary)
	if err == nil || errors.Is(err, ErrNotFound) {
		return out, err
	}
	logger.Get().Warn().
		Err(err).
		Str("collection", what).
		Msg("Primary content source unavailable, serving seed data")
	return read(f.fallback)
}

func (f *Failover) News(ctx context.Context, q NewsQuery) ([]models.News, error) {
	return failover(f, ctx, "news", func(s ContentSource) ([]models.News, error) {
		return s.News(ctx, q)
	})
}

func (f *Failover) NewsByID(ctx context.Context, id string) (models.News, error) {
	return failover(f, ctx, "news", func(s ContentSource) (models.News, error) {
		return s.NewsByID(ctx, id)
	})
}

func (f *Failover) NewsBySlug(ctx context.Context, slug string) (models.News, error) {
	return failover(f, ctx, "news", func(s ContentSource) (models.News, error) {
		return s.NewsBySlug(ctx, slug)
	})
}

func (f *Failover) Photos(ctx context.Context, q PhotoQuery) ([]models.Photo, error) {
	return failover(f, ctx, "photos", func(s ContentSource) ([]models.Photo, error) {
		return s.Photos(ctx, q)
	})
}

func (f *Failover) Videos(ctx context.Context, q VideoQuery) ([]models.Video, error) {
	return failover(f, ctx, "videos", func(s ContentSource) ([]models.Video, error) {
		return s.Videos(ctx, q)
	})
}

func (f *Failover) Events(ctx context.Context, q EventQuery) ([]models.Event, error) {
	return failover(f, ctx, "events", func(s ContentSource) ([]models.Event, error) {
		return s.Events(ctx, q)
	})
}

func (f *Failover) Achievements(ctx context.Context, q AchievementQuery) ([]models.Achievement, error) {
	return failover(f, ctx, "achievements", func(s ContentSource) ([]models.Achievement, error) {
		return s.Achievements(ctx, q)
	})
}
