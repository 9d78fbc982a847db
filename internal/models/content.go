package models

import (
	"fmt"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/i18n"
)

// EventStatus classifies an event on the public calendar.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventPast      EventStatus = "past"
	EventCancelled EventStatus = "cancelled"
)

// News is a press item. Slug is unique among published items and drives the
// detail-page lookup. PublishedAt is non-nil iff Published, so drafts never
// serialize a zero timestamp.
type News struct {
	ID          string    `json:"id"`
	TitleEn     string    `json:"titleEn"`
	TitleHi     string    `json:"titleHi,omitempty"`
	ContentEn   string    `json:"contentEn"`
	ContentHi   string    `json:"contentHi,omitempty"`
	Slug        string    `json:"slug"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Published   bool      `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (n News) Title() i18n.LocalizedText   { return i18n.Text(n.TitleEn, n.TitleHi) }
func (n News) Content() i18n.LocalizedText { return i18n.Text(n.ContentEn, n.ContentHi) }

// Photo is a gallery entry. ImageURL is required.
type Photo struct {
	ID        string    `json:"id"`
	TitleEn   string    `json:"titleEn"`
	TitleHi   string    `json:"titleHi,omitempty"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category,omitempty"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Photo) Title() i18n.LocalizedText { return i18n.Text(p.TitleEn, p.TitleHi) }

// Video is an embedded video entry. VideoURL is required and must be a
// well-formed URL.
type Video struct {
	ID           string    `json:"id"`
	TitleEn      string    `json:"titleEn"`
	TitleHi      string    `json:"titleHi,omitempty"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Category     string    `json:"category,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (v Video) Title() i18n.LocalizedText { return i18n.Text(v.TitleEn, v.TitleHi) }

// Event is a calendar entry. Date drives the "upcoming" filter.
type Event struct {
	ID            string      `json:"id"`
	TitleEn       string      `json:"titleEn"`
	TitleHi       string      `json:"titleHi,omitempty"`
	DescriptionEn string      `json:"descriptionEn"`
	DescriptionHi string      `json:"descriptionHi,omitempty"`
	Date          time.Time   `json:"date"`
	Location      string      `json:"location,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	Status        EventStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (e Event) Title() i18n.LocalizedText       { return i18n.Text(e.TitleEn, e.TitleHi) }
func (e Event) Description() i18n.LocalizedText { return i18n.Text(e.DescriptionEn, e.DescriptionHi) }

// Achievement is a milestone attributed to a year between 1900 and 2100.
type Achievement struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"titleEn"`
	TitleHi       string    `json:"titleHi,omitempty"`
	DescriptionEn string    `json:"descriptionEn"`
	DescriptionHi string    `json:"descriptionHi,omitempty"`
	Year          int       `json:"year"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (a Achievement) Title() i18n.LocalizedText { return i18n.Text(a.TitleEn, a.TitleHi) }
func (a Achievement) Description() i18n.LocalizedText {
	return i18n.Text(a.DescriptionEn, a.DescriptionHi)
}

// NewID builds an entity id from its kind and the current time, e.g.
// "news-1735689600000".
func NewID(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%d", kind, now.UnixMilli())
}
