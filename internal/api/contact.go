package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/logger"
	"github.com/Govt-of-India/mla-portal/internal/metrics"
	"github.com/Govt-of-India/mla-portal/internal/models"
)

// CreateContact handles POST /api/contact, the one public write surface.
func (h *Handlers) CreateContact(c *fiber.Ctx) error {
	var payload models.ContactPayload
	if ok, err := parsePayload(h, c, &payload); !ok {
		return err
	}

	sub := payload.Build(h.now())
	if err := h.contacts.SaveSubmission(c.Context(), sub); err != nil {
		logger.Get().Error().Err(err).Msg("Error saving contact submission")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit contact form",
		})
	}

	metrics.ContactSubmissions.Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact form submitted successfully",
		"id":      sub.ID,
	})
}

// ListContact handles GET /api/contact (admin), newest first.
func (h *Handlers) ListContact(c *fiber.Ctx) error {
	subs, err := h.contacts.ListSubmissions(c.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error listing contact submissions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contact submissions",
		})
	}
	return c.JSON(subs)
}

// Upload handles POST /api/upload (admin): stores a multipart file in the
// media bucket and returns its public URL.
func (h *Handlers) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error opening uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		logger.Get().Error().Err(err).Msg("Error reading uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}

	url, err := h.uploader.Upload(c.Context(), fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), &buf)
	if err != nil {
		logger.Get().Error().Err(err).Str("filename", fileHeader.Filename).Msg("Error uploading file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}

	logger.Get().Info().
		Str("filename", fileHeader.Filename).
		Int64("size", fileHeader.Size).
		Str("url", url).
		Msg("File uploaded")

	return c.JSON(fiber.Map{"url": url})
}
