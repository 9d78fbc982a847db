package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/middleware"
	"github.com/Govt-of-India/mla-portal/internal/models"
	"github.com/Govt-of-India/mla-portal/internal/store"
)

func queryLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (h *Handlers) listError(c *fiber.Ctx, what string, err error) error {
	logger.Get().Error().Err(err).Str("collection", what).Msg("Error listing content")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to fetch " + what,
	})
}

// parsePayload body-parses and validates an admin payload, writing the 400
// response itself on failure.
func parsePayload(h *Handlers, c *fiber.Ctx, payload interface{}) (ok bool, err error) {
	if err := c.BodyParser(payload); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if details := h.validator.Check(payload); details != nil {
		return false, middleware.ValidationResponse(c, details)
	}
	return true, nil
}

// ListNews handles GET /api/news
func (h *Handlers) ListNews(c *fiber.Ctx) error {
	items, err := h.source.News(c.Context(), store.NewsQuery{
		PublishedOnly: c.Query("published") == "true",
		Limit:         queryLimit(c),
	})
	if err != nil {
		return h.listError(c, "news", err)
	}
	return c.JSON(items)
}

// GetNews handles GET /api/news/:id
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	item, err := h.source.NewsByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}
	if err != nil {
		return h.listError(c, "news", err)
	}
	return c.JSON(item)
}

// CreateNews handles POST /api/news. The record is constructed and echoed
// back; the seed-backed read path is not mutated.
func (h *Handlers) CreateNews(c *fiber.Ctx) error {
	var payload models.NewsPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}
	item := payload.Build(h.now())
	logger.Get().Info().Str("id", item.ID).Str("slug", item.Slug).Msg("News created")
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateNews handles PUT /api/news/:id. The update is validated and echoed
// against the existing record; seed data itself stays immutable.
func (h *Handlers) UpdateNews(c *fiber.Ctx) error {
	existing, err := h.source.NewsByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}
	if err != nil {
		return h.listError(c, "news", err)
	}

	var payload models.NewsPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}

	updated := payload.Build(h.now())
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if updated.Published && existing.PublishedAt != nil {
		updated.PublishedAt = existing.PublishedAt
	}
	return c.JSON(updated)
}

// DeleteNews handles DELETE /api/news/:id.
func (h *Handlers) DeleteNews(c *fiber.Ctx) error {
	if _, err := h.source.NewsByID(c.Context(), c.Params("id")); errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	} else if err != nil {
		return h.listError(c, "news", err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// ListPhotos handles GET /api/photos
func (h *Handlers) ListPhotos(c *fiber.Ctx) error {
	items, err := h.source.Photos(c.Context(), store.PhotoQuery{
		FeaturedOnly: c.Query("featured") == "true",
		Limit:        queryLimit(c),
	})
	if err != nil {
		return h.listError(c, "photos", err)
	}
	return c.JSON(items)
}

// CreatePhoto handles POST /api/photos
func (h *Handlers) CreatePhoto(c *fiber.Ctx) error {
	var payload models.PhotoPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload.Build(h.now()))
}

// ListVideos handles GET /api/videos
func (h *Handlers) ListVideos(c *fiber.Ctx) error {
	items, err := h.source.Videos(c.Context(), store.VideoQuery{
		FeaturedOnly: c.Query("featured") == "true",
		Limit:        queryLimit(c),
	})
	if err != nil {
		return h.listError(c, "videos", err)
	}
	return c.JSON(items)
}

// CreateVideo handles POST /api/videos
func (h *Handlers) CreateVideo(c *fiber.Ctx) error {
	var payload models.VideoPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload.Build(h.now()))
}

// ListEvents handles GET /api/events
func (h *Handlers) ListEvents(c *fiber.Ctx) error {
	items, err := h.source.Events(c.Context(), store.EventQuery{
		Status: models.EventStatus(c.Query("status")),
		Limit:  queryLimit(c),
	})
	if err != nil {
		return h.listError(c, "events", err)
	}
	return c.JSON(items)
}

// CreateEvent handles POST /api/events
func (h *Handlers) CreateEvent(c *fiber.Ctx) error {
	var payload models.EventPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload.Build(h.now()))
}

// ListAchievements handles GET /api/achievements
func (h *Handlers) ListAchievements(c *fiber.Ctx) error {
	items, err := h.source.Achievements(c.Context(), store.AchievementQuery{
		Limit: queryLimit(c),
	})
	if err != nil {
		return h.listError(c, "achievements", err)
	}
	return c.JSON(items)
}

// CreateAchievement handles POST /api/achievements
func (h *Handlers) CreateAchievement(c *fiber.Ctx) error {
	var payload models.AchievementPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload.Build(h.now()))
}
