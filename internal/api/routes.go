package api

import (
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Govt-of-India/mla-portal/internal/middleware"
)

// SetupRoutes configures all the routes for the application.
func SetupRoutes(app *fiber.App, h *Handlers) {
	app.Use(middleware.Prometheus())
	app.Use(middleware.RequestLogger())

	// Operational endpoints
	app.Get("/health", h.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/sitemap.xml", h.Sitemap)

	// REST API
	api := app.Group("/api")

	api.Get("/news", h.ListNews)
	api.Get("/news/:id", h.GetNews)
	api.Get("/photos", h.ListPhotos)
	api.Get("/videos", h.ListVideos)
	api.Get("/events", h.ListEvents)
	api.Get("/achievements", h.ListAchievements)
	api.Post("/contact", h.CreateContact)

	// Admin-only writes; the key check runs before any handler touches the
	// content store.
	admin := middleware.AdminOnly(h.config.AdminAPIKey)
	api.Post("/news", admin, h.CreateNews)
	api.Put("/news/:id", admin, h.UpdateNews)
	api.Delete("/news/:id", admin, h.DeleteNews)
	api.Post("/photos", admin, h.CreatePhoto)
	api.Post("/videos", admin, h.CreateVideo)
	api.Post("/events", admin, h.CreateEvent)
	api.Post("/achievements", admin, h.CreateAchievement)
	api.Get("/contact", admin, h.ListContact)
	api.Post("/upload", admin, h.Upload)
	api.Get("/admin/dashboard", admin, h.Dashboard)

	// Localized page views
	app.Get("/", h.RootRedirect)
	pages := app.Group("/:locale", RequireLocale())
	pages.Get("/", h.HomePage)
	pages.Get("/news", h.NewsListPage)
	pages.Get("/news/:slug", h.NewsDetailPage)
	pages.Get("/gallery", h.GalleryPage)
	pages.Get("/videos", h.VideosPage)
	pages.Get("/about", h.AboutPage)
	pages.Get("/contact", h.ContactPage)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
