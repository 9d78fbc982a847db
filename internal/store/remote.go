package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

// Remote is the ContentSource backed by an upstream content API exposing the
// same /api/<type> surface this service does. Used when the site fronts a
// central CMS instead of its own seed data.
type Remote struct {
	client  *resty.Client
	baseURL string
}

// NewRemote builds a remote source for the API rooted at baseURL.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: baseURL,
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second).
			SetRetryMaxWaitTime(10 * time.Second),
	}
}

func (r *Remote) fetch(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func limitParam(params map[string]string, limit int) map[string]string {
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return params
}

func (r *Remote) News(ctx context.Context, q NewsQuery) ([]models.News, error) {
	params := map[string]string{}
	if q.PublishedOnly {
		params["published"] = "true"
	}
	var out []models.News
	if err := r.fetch(ctx, "/api/news", limitParam(params, q.Limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) NewsByID(ctx context.Context, id string) (models.News, error) {
	var out models.News
	if err := r.fetch(ctx, "/api/news/"+id, nil, &out); err != nil {
		return models.News{}, err
	}
	return out, nil
}

func (r *Remote) NewsBySlug(ctx context.Context, slug string) (models.News, error) {
	// The upstream has no slug endpoint; filter the published listing.
	items, err := r.News(ctx, NewsQuery{PublishedOnly: true})
	if err != nil {
		return models.News{}, err
	}
	for _, n := range items {
		if n.Slug == slug {
			return n, nil
		}
	}
	return models.News{}, ErrNotFound
}

func (r *Remote) Photos(ctx context.Context, q PhotoQuery) ([]models.Photo, error) {
	params := map[string]string{}
	if q.FeaturedOnly {
		params["featured"] = "true"
	}
	var out []models.Photo
	if err := r.fetch(ctx, "/api/photos", limitParam(params, q.Limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) Videos(ctx context.Context, q VideoQuery) ([]models.Video, error) {
	params := map[string]string{}
	if q.FeaturedOnly {
		params["featured"] = "true"
	}
	var out []models.Video
	if err := r.fetch(ctx, "/api/videos", limitParam(params, q.Limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) Events(ctx context.Context, q EventQuery) ([]models.Event, error) {
	params := map[string]string{}
	if q.Status != "" {
		params["status"] = string(q.Status)
	}
	if q.NotBefore.IsZero() {
		var out []models.Event
		if err := r.fetch(ctx, "/api/events", limitParam(params, q.Limit), &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	// The upstream filters by status only; it cannot apply the date cut.
	// The limit must wait until after the cut, or an upstream truncating
	// its date-ascending listing drops the matching future events.
	var out []models.Event
	if err := r.fetch(ctx, "/api/events", params, &out); err != nil {
		return nil, err
	}
	kept := out[:0]
	for _, e := range out {
		if !e.Date.Before(q.NotBefore) {
			kept = append(kept, e)
		}
	}
	return truncate(kept, q.Limit), nil
}

func (r *Remote) Achievements(ctx context.Context, q AchievementQuery) ([]models.Achievement, error) {
	var out []models.Achievement
	if err := r.fetch(ctx, "/api/achievements", limitParam(map[string]string{}, q.Limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}
