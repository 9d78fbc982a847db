package content

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/i18n"
	"github.com/Govt-of-India/mla-portal/internal/store"
)

var testNow = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func testAggregator() *Aggregator {
	a := NewAggregator(store.NewMemory(store.Seed(testNow)))
	a.now = func() time.Time { return testNow }
	return a
}

func TestHomeSections(t *testing.T) {
	a := testAggregator()

	home, err := a.Home(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}

	if len(home.News) != 3 {
		t.Errorf("news teaser: got %d items, want 3 published", len(home.News))
	}
	if len(home.News) > 1 && home.News[0].ID != "news-1" {
		t.Errorf("news teaser not newest-first: first is %s", home.News[0].ID)
	}
	// Banner slide plus the featured photos.
	if len(home.Slides) != 5 {
		t.Errorf("slides: got %d, want 5 (banner + 4 featured)", len(home.Slides))
	}
	if home.Slides[0].ID != "banner-main" {
		t.Errorf("first slide is %s, want banner-main", home.Slides[0].ID)
	}
	// Only upcoming events dated at or after now.
	if len(home.Events) != 2 {
		t.Errorf("events: got %d, want 2 upcoming", len(home.Events))
	}
	if len(home.Achievements) == 0 || home.Achievements[0].Year != 2025 {
		t.Errorf("achievements not sorted by year descending: %+v", home.Achievements)
	}
	if len(home.Videos) != 3 {
		t.Errorf("videos teaser: got %d, want 3", len(home.Videos))
	}
}

func TestHomeIsLocalized(t *testing.T) {
	a := testAggregator()

	en, err := a.Home(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Home(en): %v", err)
	}
	hi, err := a.Home(context.Background(), i18n.Hindi)
	if err != nil {
		t.Fatalf("Home(hi): %v", err)
	}

	if en.News[0].Title != "New Road Construction Project Inaugurated" {
		t.Errorf("en title = %q", en.News[0].Title)
	}
	if hi.News[0].Title != "नई सड़क निर्माण परियोजना का उद्घाटन" {
		t.Errorf("hi title = %q", hi.News[0].Title)
	}
	if en.Meta.AltPath != "/hi" || hi.Meta.AltPath != "/en" {
		t.Errorf("alt paths = %q / %q", en.Meta.AltPath, hi.Meta.AltPath)
	}
	if en.Headings.News != "Latest News" || hi.Headings.News != "ताज़ा समाचार" {
		t.Errorf("news headings = %q / %q", en.Headings.News, hi.Headings.News)
	}
	if hi.Headings.EmptyEvents != "कोई आगामी कार्यक्रम नहीं।" {
		t.Errorf("hi empty-events = %q", hi.Headings.EmptyEvents)
	}
}

func TestHomeIsIdempotent(t *testing.T) {
	a := testAggregator()

	first, err := a.Home(context.Background(), i18n.Hindi)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	second, err := a.Home(context.Background(), i18n.Hindi)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical aggregations produced different views")
	}
}

func TestNewsDetailRelatedExcludesSelf(t *testing.T) {
	a := testAggregator()

	view, err := a.NewsDetail(context.Background(), i18n.English, "free-health-camp-2000-patients")
	if err != nil {
		t.Fatalf("NewsDetail: %v", err)
	}
	if view.Article.Slug != "free-health-camp-2000-patients" {
		t.Errorf("article slug = %q", view.Article.Slug)
	}
	for _, r := range view.Related {
		if r.Slug == view.Article.Slug {
			t.Error("related items include the article itself")
		}
	}
	if len(view.Related) != 2 {
		t.Errorf("related: got %d, want 2 other published items", len(view.Related))
	}
	if view.RelatedHeading != "Related News" {
		t.Errorf("related heading = %q", view.RelatedHeading)
	}
}

func TestNewsDetailUnknownSlug(t *testing.T) {
	a := testAggregator()

	if _, err := a.NewsDetail(context.Background(), i18n.English, "missing"); err == nil {
		t.Fatal("expected error for unknown slug")
	}
}

func TestNewsListExcerptIsTruncated(t *testing.T) {
	a := testAggregator()

	view, err := a.NewsList(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("NewsList: %v", err)
	}
	if len(view.News) != 3 {
		t.Fatalf("got %d items, want 3", len(view.News))
	}
	for _, n := range view.News {
		if len([]rune(n.Excerpt)) > excerptLength+3 {
			t.Errorf("excerpt for %s exceeds limit: %d runes", n.ID, len([]rune(n.Excerpt)))
		}
	}
}

func TestEmptyStoreYieldsEmptySections(t *testing.T) {
	a := NewAggregator(store.NewMemory(store.Data{}))
	a.now = func() time.Time { return testNow }

	home, err := a.Home(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Home over empty store: %v", err)
	}
	if len(home.News) != 0 || len(home.Events) != 0 || len(home.Achievements) != 0 {
		t.Error("empty store must produce empty sections, not content")
	}
	if len(home.Slides) != 1 {
		t.Errorf("empty store still gets the banner slide, got %d slides", len(home.Slides))
	}
}
