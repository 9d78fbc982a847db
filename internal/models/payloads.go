package models

import "time"

// Admin write payloads. Field constraints mirror the entity invariants;
// validation tags are enforced by the API layer before any record is built.

type NewsPayload struct {
	TitleEn   string `json:"titleEn" validate:"required"`
	TitleHi   string `json:"titleHi" validate:"omitempty"`
	ContentEn string `json:"contentEn" validate:"required"`
	ContentHi string `json:"contentHi" validate:"omitempty"`
	Slug      string `json:"slug" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
	Published bool   `json:"published"`
}

// Build constructs the News record for a validated payload. PublishedAt is
// set iff the item is published.
func (p NewsPayload) Build(now time.Time) News {
	n := News{
		ID:        NewID("news", now),
		TitleEn:   p.TitleEn,
		TitleHi:   p.TitleHi,
		ContentEn: p.ContentEn,
		ContentHi: p.ContentHi,
		Slug:      p.Slug,
		ImageURL:  p.ImageURL,
		Published: p.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Published {
		n.PublishedAt = &now
	}
	return n
}

type PhotoPayload struct {
	TitleEn  string `json:"titleEn" validate:"required"`
	TitleHi  string `json:"titleHi" validate:"omitempty"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	Category string `json:"category" validate:"omitempty"`
	Featured bool   `json:"featured"`
}

func (p PhotoPayload) Build(now time.Time) Photo {
	return Photo{
		ID:        NewID("photo", now),
		TitleEn:   p.TitleEn,
		TitleHi:   p.TitleHi,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Featured:  p.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type VideoPayload struct {
	TitleEn      string `json:"titleEn" validate:"required"`
	TitleHi      string `json:"titleHi" validate:"omitempty"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	Category     string `json:"category" validate:"omitempty"`
	Featured     bool   `json:"featured"`
}

func (p VideoPayload) Build(now time.Time) Video {
	return Video{
		ID:           NewID("video", now),
		TitleEn:      p.TitleEn,
		TitleHi:      p.TitleHi,
		VideoURL:     p.VideoURL,
		ThumbnailURL: p.ThumbnailURL,
		Category:     p.Category,
		Featured:     p.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

type EventPayload struct {
	TitleEn       string    `json:"titleEn" validate:"required"`
	TitleHi       string    `json:"titleHi" validate:"omitempty"`
	DescriptionEn string    `json:"descriptionEn" validate:"required"`
	DescriptionHi string    `json:"descriptionHi" validate:"omitempty"`
	Date          time.Time `json:"date" validate:"required"`
	Location      string    `json:"location" validate:"omitempty"`
	ImageURL      string    `json:"imageUrl" validate:"omitempty,url"`
	Status        string    `json:"status" validate:"omitempty,oneof=upcoming past cancelled"`
}

func (p EventPayload) Build(now time.Time) Event {
	status := EventStatus(p.Status)
	if status == "" {
		status = EventUpcoming
	}
	return Event{
		ID:            NewID("event", now),
		TitleEn:       p.TitleEn,
		TitleHi:       p.TitleHi,
		DescriptionEn: p.DescriptionEn,
		DescriptionHi: p.DescriptionHi,
		Date:          p.Date,
		Location:      p.Location,
		ImageURL:      p.ImageURL,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type AchievementPayload struct {
	TitleEn       string `json:"titleEn" validate:"required"`
	TitleHi       string `json:"titleHi" validate:"omitempty"`
	DescriptionEn string `json:"descriptionEn" validate:"required"`
	DescriptionHi string `json:"descriptionHi" validate:"omitempty"`
	Year          int    `json:"year" validate:"required,min=1900,max=2100"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	Category      string `json:"category" validate:"omitempty"`
}

func (p AchievementPayload) Build(now time.Time) Achievement {
	return Achievement{
		ID:            NewID("achievement", now),
		TitleEn:       p.TitleEn,
		TitleHi:       p.TitleHi,
		DescriptionEn: p.DescriptionEn,
		DescriptionHi: p.DescriptionHi,
		Year:          p.Year,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
