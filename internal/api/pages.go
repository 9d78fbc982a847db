package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/i18n"
	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/metrics"
	"github.com/Govt-of-India/mla-portal/internal/store"
	"github.com/Govt-of-India/mla-portal/internal/utils"
)

// RequireLocale rejects any locale segment outside the supported set with a
// 404. There is no silent fallback to a default locale; content-level
// fallback happens per field inside the resolver instead.
func RequireLocale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !i18n.IsSupported(c.Params("locale")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Page not found",
			})
		}
		return c.Next()
	}
}

// RootRedirect handles GET /: negotiate the visitor's language and redirect
// to that locale's homepage.
func (h *Handlers) RootRedirect(c *fiber.Ctx) error {
	locale := i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage))
	return c.Redirect("/"+string(locale), fiber.StatusTemporaryRedirect)
}

func (h *Handlers) locale(c *fiber.Ctx) i18n.Locale {
	return i18n.Locale(c.Params("locale"))
}

// servePage runs one page aggregation behind the page cache. The cache is
// best-effort: a failed lookup or write logs and falls through to the
// aggregator, never to the client.
func (h *Handlers) servePage(c *fiber.Ctx, page string, build func() (interface{}, error)) error {
	locale := h.locale(c)
	key := utils.Hash(string(locale) + ":" + c.OriginalURL())

	if cached, ok, err := h.pageCache.Get(c.Context(), key); err != nil {
		logger.Get().Warn().Err(err).Str("page", page).Msg("Page cache lookup failed")
	} else if ok {
		metrics.PageCacheHits.WithLabelValues("hit").Inc()
		metrics.PagesServed.WithLabelValues(page, string(locale)).Inc()
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	metrics.PageCacheHits.WithLabelValues("miss").Inc()

	view, err := build()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Page not found",
			})
		}
		logger.Get().Error().Err(err).Str("page", page).Msg("Error building page view")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build page",
		})
	}

	body, err := json.Marshal(view)
	if err != nil {
		return err
	}
	if err := h.pageCache.Set(c.Context(), key, body, h.config.CacheTTL); err != nil {
		logger.Get().Warn().Err(err).Str("page", page).Msg("Page cache write failed")
	}

	metrics.PagesServed.WithLabelValues(page, string(locale)).Inc()
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// HomePage handles GET /:locale
func (h *Handlers) HomePage(c *fiber.Ctx) error {
	return h.servePage(c, "home", func() (interface{}, error) {
		return h.aggregator.Home(c.Context(), h.locale(c))
	})
}

// NewsListPage handles GET /:locale/news
func (h *Handlers) NewsListPage(c *fiber.Ctx) error {
	return h.servePage(c, "news", func() (interface{}, error) {
		return h.aggregator.NewsList(c.Context(), h.locale(c))
	})
}

// NewsDetailPage handles GET /:locale/news/:slug
func (h *Handlers) NewsDetailPage(c *fiber.Ctx) error {
	return h.servePage(c, "news_detail", func() (interface{}, error) {
		return h.aggregator.NewsDetail(c.Context(), h.locale(c), c.Params("slug"))
	})
}

// GalleryPage handles GET /:locale/gallery
func (h *Handlers) GalleryPage(c *fiber.Ctx) error {
	return h.servePage(c, "gallery", func() (interface{}, error) {
		return h.aggregator.Gallery(c.Context(), h.locale(c))
	})
}

// VideosPage handles GET /:locale/videos
func (h *Handlers) VideosPage(c *fiber.Ctx) error {
	return h.servePage(c, "videos", func() (interface{}, error) {
		return h.aggregator.Videos(c.Context(), h.locale(c))
	})
}

// AboutPage handles GET /:locale/about
func (h *Handlers) AboutPage(c *fiber.Ctx) error {
	return h.servePage(c, "about", func() (interface{}, error) {
		return h.aggregator.About(h.locale(c)), nil
	})
}

// ContactPage handles GET /:locale/contact
func (h *Handlers) ContactPage(c *fiber.Ctx) error {
	return h.servePage(c, "contact", func() (interface{}, error) {
		return h.aggregator.Contact(h.locale(c)), nil
	})
}
