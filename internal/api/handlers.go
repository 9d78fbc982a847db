package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/cache"
	"github.com/Govt-of-India/mla-portal/internal/config"
	"github.com/Govt-of-India/mla-portal/internal/content"
	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/middleware"
	"github.com/Govt-of-India/mla-portal/internal/storage"
	"github.com/Govt-of-India/mla-portal/internal/store"
	"github.com/Govt-of-India/mla-portal/internal/uploads"
)

// Handlers carries the request-scoped collaborators. Everything is injected
// at construction; there are no package-level singletons on the data path.
type Handlers struct {
	config     *config.Config
	source     store.ContentSource
	seed       *store.Memory
	aggregator *content.Aggregator
	pageCache  cache.Store
	contacts   *storage.ContactStorage
	uploader   uploads.Uploader
	validator  *middleware.Validator
	now        func() time.Time
}

// Deps bundles the constructed collaborators for NewHandlers.
type Deps struct {
	Config    *config.Config
	Source    store.ContentSource
	Seed      *store.Memory
	PageCache cache.Store
	Contacts  *storage.ContactStorage
	Uploader  uploads.Uploader
}

func NewHandlers(d Deps) *Handlers {
	return &Handlers{
		config:     d.Config,
		source:     d.Source,
		seed:       d.Seed,
		aggregator: content.NewAggregator(d.Source),
		pageCache:  d.PageCache,
		contacts:   d.Contacts,
		uploader:   d.Uploader,
		validator:  middleware.NewValidator(),
		now:        time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Dashboard handles GET /api/admin/dashboard: per-collection totals for the
// admin landing screen.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	counts := h.seed.Counts()
	if subs, err := h.contacts.ListSubmissions(c.Context()); err != nil {
		logger.Get().Warn().Err(err).Msg("Error counting contact submissions")
	} else {
		counts["contacts"] = len(subs)
	}
	return c.JSON(fiber.Map{"counts": counts})
}
