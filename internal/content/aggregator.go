// Package content assembles localized, display-ready page views from the
// content store. Each section follows the same pipeline: filter, stable
// sort, truncate to the section's limit, then resolve every bilingual field
// for the requested locale.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Govt-of-India/mla-portal/internal/i18n"
	"github.com/Govt-of-India/mla-portal/internal/models"
	"github.com/Govt-of-India/mla-portal/internal/store"
	"github.com/Govt-of-India/mla-portal/internal/utils"
)

// Section limits, matching the public site layout.
const (
	homeNewsLimit     = 4
	homeEventsLimit   = 3
	achievementsLimit = 6
	homePhotosLimit   = 6
	homeVideosLimit   = 3
	heroPhotosLimit   = 4
	relatedNewsLimit  = 3
	excerptLength     = 120
)

// bannerImageURL is the fixed first slide of the hero slider.
const bannerImageURL = "/images/banner-mla.jpeg"

// Aggregator builds page views over a ContentSource.
type Aggregator struct {
	source store.ContentSource
	now    func() time.Time
}

// NewAggregator builds an aggregator over the given source.
func NewAggregator(source store.ContentSource) *Aggregator {
	return &Aggregator{source: source, now: time.Now}
}

func (a *Aggregator) meta(locale i18n.Locale, path string) PageMeta {
	alt := i18n.Hindi
	if locale == i18n.Hindi {
		alt = i18n.English
	}
	prefix := "/" + string(locale)
	return PageMeta{
		Locale:    string(locale),
		Path:      path,
		AltLocale: string(alt),
		AltPath:   i18n.SwitchLocalePath(path, locale, alt),
		Nav: []NavItem{
			{Href: prefix, Label: i18n.Message(locale, "nav.home")},
			{Href: prefix + "/about", Label: i18n.Message(locale, "nav.about")},
			{Href: prefix + "/gallery", Label: i18n.Message(locale, "nav.gallery")},
			{Href: prefix + "/news", Label: i18n.Message(locale, "nav.press")},
			{Href: prefix + "/videos", Label: i18n.Message(locale, "nav.videos")},
			{Href: prefix + "/contact", Label: i18n.Message(locale, "nav.contact")},
		},
	}
}

func newsTeaser(locale i18n.Locale, n models.News) NewsTeaser {
	return NewsTeaser{
		ID:       n.ID,
		Title:    n.Title().Resolve(locale),
		Excerpt:  utils.Truncate(n.Content().Resolve(locale), excerptLength),
		Slug:     n.Slug,
		ImageURL: n.ImageURL,
		Date:     i18n.FormatDate(locale, n.CreatedAt),
	}
}

func eventView(locale i18n.Locale, e models.Event) EventView {
	return EventView{
		ID:          e.ID,
		Title:       e.Title().Resolve(locale),
		Description: e.Description().Resolve(locale),
		Date:        i18n.FormatDate(locale, e.Date),
		Location:    e.Location,
		ImageURL:    e.ImageURL,
	}
}

func achievementView(locale i18n.Locale, ac models.Achievement) AchievementView {
	return AchievementView{
		ID:          ac.ID,
		Title:       ac.Title().Resolve(locale),
		Description: ac.Description().Resolve(locale),
		Year:        ac.Year,
		ImageURL:    ac.ImageURL,
		Category:    ac.Category,
	}
}

func photoView(locale i18n.Locale, p models.Photo) PhotoView {
	return PhotoView{
		ID:       p.ID,
		Title:    p.Title().Resolve(locale),
		ImageURL: p.ImageURL,
		Category: p.Category,
	}
}

func videoView(locale i18n.Locale, v models.Video) VideoView {
	return VideoView{
		ID:           v.ID,
		Title:        v.Title().Resolve(locale),
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Category:     v.Category,
	}
}

// Home assembles the homepage: hero slides, news teaser, upcoming events,
// achievements, gallery and video teasers. Empty sections come back as empty
// slices, never as errors.
func (a *Aggregator) Home(ctx context.Context, locale i18n.Locale) (HomeView, error) {
	view := HomeView{
		Meta: a.meta(locale, "/"+string(locale)),
		Headings: HomeHeadings{
			News:         i18n.Message(locale, "section.news"),
			Events:       i18n.Message(locale, "section.events"),
			Achievements: i18n.Message(locale, "section.achievements"),
			Photos:       i18n.Message(locale, "section.gallery"),
			Videos:       i18n.Message(locale, "section.videos"),
			EmptyNews:    i18n.Message(locale, "empty.news"),
			EmptyEvents:  i18n.Message(locale, "empty.events"),
		},
	}

	featured, err := a.source.Photos(ctx, store.PhotoQuery{FeaturedOnly: true, Limit: heroPhotosLimit})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: featured photos: %w", err)
	}
	view.Slides = []Slide{{
		ID:       "banner-main",
		ImageURL: bannerImageURL,
		Title:    i18n.Message(locale, "home.hero.title"),
		Subtitle: i18n.Message(locale, "home.hero.subtitle"),
	}}
	for _, p := range featured {
		view.Slides = append(view.Slides, Slide{
			ID:       p.ID,
			ImageURL: p.ImageURL,
			Title:    p.Title().Resolve(locale),
		})
	}

	news, err := a.source.News(ctx, store.NewsQuery{PublishedOnly: true, Limit: homeNewsLimit})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: news: %w", err)
	}
	view.News = make([]NewsTeaser, 0, len(news))
	for _, n := range news {
		view.News = append(view.News, newsTeaser(locale, n))
	}

	events, err := a.source.Events(ctx, store.EventQuery{
		Status:    models.EventUpcoming,
		NotBefore: a.now(),
		Limit:     homeEventsLimit,
	})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: events: %w", err)
	}
	view.Events = make([]EventView, 0, len(events))
	for _, e := range events {
		view.Events = append(view.Events, eventView(locale, e))
	}

	achievements, err := a.source.Achievements(ctx, store.AchievementQuery{Limit: achievementsLimit})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: achievements: %w", err)
	}
	view.Achievements = make([]AchievementView, 0, len(achievements))
	for _, ac := range achievements {
		view.Achievements = append(view.Achievements, achievementView(locale, ac))
	}

	photos, err := a.source.Photos(ctx, store.PhotoQuery{Limit: homePhotosLimit})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: photos: %w", err)
	}
	view.Photos = make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		view.Photos = append(view.Photos, photoView(locale, p))
	}

	videos, err := a.source.Videos(ctx, store.VideoQuery{Limit: homeVideosLimit})
	if err != nil {
		return HomeView{}, fmt.Errorf("home: videos: %w", err)
	}
	view.Videos = make([]VideoView, 0, len(videos))
	for _, v := range videos {
		view.Videos = append(view.Videos, videoView(locale, v))
	}

	return view, nil
}

// NewsList assembles the full news listing page: every published item,
// newest first.
func (a *Aggregator) NewsList(ctx context.Context, locale i18n.Locale) (NewsListView, error) {
	news, err := a.source.News(ctx, store.NewsQuery{PublishedOnly: true})
	if err != nil {
		return NewsListView{}, fmt.Errorf("news list: %w", err)
	}
	view := NewsListView{
		Meta:    a.meta(locale, "/"+string(locale)+"/news"),
		Heading: i18n.Message(locale, "section.all_news"),
		News:    make([]NewsTeaser, 0, len(news)),
	}
	for _, n := range news {
		view.News = append(view.News, newsTeaser(locale, n))
	}
	return view, nil
}

// NewsDetail assembles one article by slug plus its related items (other
// published news, newest first, excluding the article itself). Returns
// store.ErrNotFound for an unknown or unpublished slug.
func (a *Aggregator) NewsDetail(ctx context.Context, locale i18n.Locale, slug string) (NewsDetailView, error) {
	n, err := a.source.NewsBySlug(ctx, slug)
	if err != nil {
		return NewsDetailView{}, fmt.Errorf("news detail %q: %w", slug, err)
	}

	view := NewsDetailView{
		Meta:           a.meta(locale, "/"+string(locale)+"/news/"+slug),
		RelatedHeading: i18n.Message(locale, "section.related_news"),
		Article: NewsArticle{
			ID:       n.ID,
			Title:    n.Title().Resolve(locale),
			Content:  n.Content().Resolve(locale),
			Slug:     n.Slug,
			ImageURL: n.ImageURL,
			Date:     i18n.FormatDate(locale, n.CreatedAt),
		},
	}

	all, err := a.source.News(ctx, store.NewsQuery{PublishedOnly: true})
	if err != nil {
		return NewsDetailView{}, fmt.Errorf("news detail %q: related: %w", slug, err)
	}
	for _, other := range all {
		if other.Slug == slug {
			continue
		}
		view.Related = append(view.Related, newsTeaser(locale, other))
		if len(view.Related) == relatedNewsLimit {
			break
		}
	}
	return view, nil
}

// About assembles the about page from the static string catalog.
func (a *Aggregator) About(locale i18n.Locale) StaticPageView {
	return StaticPageView{
		Meta:    a.meta(locale, "/"+string(locale)+"/about"),
		Heading: i18n.Message(locale, "about.heading"),
		Body:    i18n.Message(locale, "about.body"),
	}
}

// Contact assembles the contact page from the static string catalog.
func (a *Aggregator) Contact(locale i18n.Locale) StaticPageView {
	return StaticPageView{
		Meta:    a.meta(locale, "/"+string(locale)+"/contact"),
		Heading: i18n.Message(locale, "contact.heading"),
		Body:    i18n.Message(locale, "contact.body"),
	}
}

// Gallery assembles the full photo gallery page.
func (a *Aggregator) Gallery(ctx context.Context, locale i18n.Locale) (GalleryView, error) {
	photos, err := a.source.Photos(ctx, store.PhotoQuery{})
	if err != nil {
		return GalleryView{}, fmt.Errorf("gallery: %w", err)
	}
	view := GalleryView{
		Meta:    a.meta(locale, "/"+string(locale)+"/gallery"),
		Heading: i18n.Message(locale, "section.gallery"),
		Photos:  make([]PhotoView, 0, len(photos)),
	}
	for _, p := range photos {
		view.Photos = append(view.Photos, photoView(locale, p))
	}
	return view, nil
}

// Videos assembles the full videos page.
func (a *Aggregator) Videos(ctx context.Context, locale i18n.Locale) (VideosView, error) {
	videos, err := a.source.Videos(ctx, store.VideoQuery{})
	if err != nil {
		return VideosView{}, fmt.Errorf("videos: %w", err)
	}
	view := VideosView{
		Meta:    a.meta(locale, "/"+string(locale)+"/videos"),
		Heading: i18n.Message(locale, "section.videos"),
		Videos:  make([]VideoView, 0, len(videos)),
	}
	for _, v := range videos {
		view.Videos = append(view.Videos, videoView(locale, v))
	}
	return view, nil
}
