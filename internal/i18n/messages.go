package i18n

// Messages holds the static interface strings for one locale.
type Messages map[string]string

// T returns the static interface strings for the given locale.
func T(locale Locale) Messages {
	if locale == Hindi {
		return messagesHi
	}
	return messagesEn
}

// Message looks up a single key, falling back to English when the locale's
// catalog has no entry. Unknown keys resolve to the key itself so a missing
// string is visible rather than silently blank.
func Message(locale Locale, key string) string {
	if v, ok := T(locale)[key]; ok && v != "" {
		return v
	}
	if v, ok := messagesEn[key]; ok && v != "" {
		return v
	}
	return key
}

var messagesEn = Messages{
	// Navigation
	"nav.home":    "Home",
	"nav.about":   "About",
	"nav.gallery": "Gallery",
	"nav.press":   "Press",
	"nav.videos":  "Videos",
	"nav.contact": "Contact",

	// Homepage hero
	"home.hero.title":    "Serving the People, Building the Future",
	"home.hero.subtitle": "Committed to the development and welfare of every citizen in the constituency",

	// Section headings
	"section.news":         "Latest News",
	"section.events":       "Upcoming Events",
	"section.achievements": "Achievements",
	"section.gallery":      "Photo Gallery",
	"section.videos":       "Videos",
	"section.all_news":     "All News",
	"section.related_news": "Related News",

	// Static pages
	"about.heading":   "About the MLA",
	"about.body":      "A public servant committed to transparent governance, rural development and the welfare of every family in the constituency.",
	"contact.heading": "Get in Touch",
	"contact.body":    "Share your concerns, suggestions or requests. Every message is read and routed to the constituency office.",

	// Empty states
	"empty.news":   "No news published yet.",
	"empty.events": "No upcoming events.",
}

var messagesHi = Messages{
	// Navigation
	"nav.home":    "होम",
	"nav.about":   "परिचय",
	"nav.gallery": "गैलरी",
	"nav.press":   "समाचार",
	"nav.videos":  "वीडियो",
	"nav.contact": "संपर्क",

	// Homepage hero
	"home.hero.title":    "जनसेवा, उज्ज्वल भविष्य का निर्माण",
	"home.hero.subtitle": "क्षेत्र के हर नागरिक के विकास और कल्याण के लिए प्रतिबद्ध",

	// Section headings
	"section.news":         "ताज़ा समाचार",
	"section.events":       "आगामी कार्यक्रम",
	"section.achievements": "उपलब्धियाँ",
	"section.gallery":      "फोटो गैलरी",
	"section.videos":       "वीडियो",
	"section.all_news":     "सभी समाचार",
	"section.related_news": "संबंधित समाचार",

	// Static pages
	"about.heading":   "विधायक का परिचय",
	"about.body":      "पारदर्शी शासन, ग्रामीण विकास और क्षेत्र के हर परिवार के कल्याण के लिए समर्पित एक जनसेवक।",
	"contact.heading": "संपर्क करें",
	"contact.body":    "अपनी समस्याएँ, सुझाव या अनुरोध साझा करें। हर संदेश पढ़ा जाता है और क्षेत्रीय कार्यालय तक पहुँचाया जाता है।",

	// Empty states
	"empty.news":   "अभी कोई समाचार प्रकाशित नहीं हुआ है।",
	"empty.events": "कोई आगामी कार्यक्रम नहीं।",
}
