package content

// View records are fully localized and display-ready. The render layer gets
// resolved strings and formatted dates only, never a bilingual pair.

// NavItem is one entry of the locale-prefixed site navigation.
type NavItem struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// PageMeta is shared by every page view: the active locale, the canonical
// path, the same path under the other locale, and the navigation.
type PageMeta struct {
	Locale    string    `json:"locale"`
	Path      string    `json:"path"`
	AltLocale string    `json:"altLocale"`
	AltPath   string    `json:"altPath"`
	Nav       []NavItem `json:"nav"`
}

// Slide is one frame of the homepage hero slider.
type Slide struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// NewsTeaser is a news item reduced to its listing form.
type NewsTeaser struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl,omitempty"`
	Date     string `json:"date"`
}

// NewsArticle is the full detail-page form of a news item.
type NewsArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl,omitempty"`
	Date     string `json:"date"`
}

// EventView is a calendar entry ready for display.
type EventView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// AchievementView is a milestone ready for display.
type AchievementView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
}

// PhotoView is a gallery tile.
type PhotoView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category,omitempty"`
}

// VideoView is a video tile.
type VideoView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Category     string `json:"category,omitempty"`
}

// HomeHeadings carries the localized section headings and empty-state
// strings of the homepage.
type HomeHeadings struct {
	News         string `json:"news"`
	Events       string `json:"events"`
	Achievements string `json:"achievements"`
	Photos       string `json:"photos"`
	Videos       string `json:"videos"`
	EmptyNews    string `json:"emptyNews"`
	EmptyEvents  string `json:"emptyEvents"`
}

// HomeView is the homepage payload: every teaser section of the landing page.
type HomeView struct {
	Meta         PageMeta          `json:"meta"`
	Headings     HomeHeadings      `json:"headings"`
	Slides       []Slide           `json:"slides"`
	News         []NewsTeaser      `json:"news"`
	Events       []EventView       `json:"events"`
	Achievements []AchievementView `json:"achievements"`
	Photos       []PhotoView       `json:"photos"`
	Videos       []VideoView       `json:"videos"`
}

// NewsListView is the full news listing page.
type NewsListView struct {
	Meta    PageMeta     `json:"meta"`
	Heading string       `json:"heading"`
	News    []NewsTeaser `json:"news"`
}

// NewsDetailView is one article plus its related items.
type NewsDetailView struct {
	Meta           PageMeta     `json:"meta"`
	Article        NewsArticle  `json:"article"`
	RelatedHeading string       `json:"relatedHeading"`
	Related        []NewsTeaser `json:"related"`
}

// GalleryView is the full photo gallery page.
type GalleryView struct {
	Meta    PageMeta    `json:"meta"`
	Heading string      `json:"heading"`
	Photos  []PhotoView `json:"photos"`
}

// VideosView is the full videos page.
type VideosView struct {
	Meta    PageMeta    `json:"meta"`
	Heading string      `json:"heading"`
	Videos  []VideoView `json:"videos"`
}

// StaticPageView is a fixed-copy page such as About or Contact.
type StaticPageView struct {
	Meta    PageMeta `json:"meta"`
	Heading string   `json:"heading"`
	Body    string   `json:"body"`
}
