package api

import (
	"encoding/xml"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/i18n"
	"github.com/Govt-of-India/mla-portal/internal/store"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapIndex struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml: the static pages and every published
// news article, once per locale.
func (h *Handlers) Sitemap(c *fiber.Ctx) error {
	base := strings.TrimSuffix(h.config.SiteBaseURL, "/")

	news, err := h.source.News(c.Context(), store.NewsQuery{PublishedOnly: true})
	if err != nil {
		return h.listError(c, "news", err)
	}

	sm := sitemapIndex{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	staticPaths := []string{"", "/about", "/gallery", "/news", "/videos", "/contact"}

	for _, locale := range i18n.Supported() {
		prefix := base + "/" + string(locale)
		for _, p := range staticPaths {
			sm.URLs = append(sm.URLs, sitemapURL{Loc: prefix + p})
		}
		for _, n := range news {
			sm.URLs = append(sm.URLs, sitemapURL{
				Loc:     prefix + "/news/" + n.Slug,
				LastMod: n.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	body, err := xml.MarshalIndent(sm, "", "  ")
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(append([]byte(xml.Header), body...))
}
