package capture

import (
	"errors"

	"gear-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for captures.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the capture routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/captures")
	group.Get("/:character", h.HandleListDates)
	group.Get("/:character/gaps", h.HandleGaps)
	group.Delete("/:character", h.HandlePurge)
	group.Put("/:character/:kind/:date", h.HandleUpload)
	group.Delete("/:character/:kind/:date", h.HandleDelete)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func unknownKind(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "unknown capture kind, expected equipment or ring-exchange",
	})
}

// HandleUpload stores one daily capture document.
// @Summary Upload Capture
// @Description Stores the raw API response of one day. Equipment captures must contain at least one item with a slot.
// @Tags captures
// @Accept json
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param kind path string true "equipment or ring-exchange"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 201 {object} capture.UploadResult "Stored Capture"
// @Failure 400 {object} map[string]string "Invalid Capture"
// @Failure 404 {object} map[string]string "Unknown Kind"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /captures/{character}/{kind}/{date} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	kind, ok := ParseKind(c.Params("kind"))
	if !ok {
		return unknownKind(c)
	}

	result, err := h.service.Upload(c.Context(), c.Params("character"), kind, c.Params("date"), c.Body())
	if err != nil {
		return h.fail(c, "Capture upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleDelete removes one daily capture document.
// @Summary Delete Capture
// @Tags captures
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param kind path string true "equipment or ring-exchange"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /captures/{character}/{kind}/{date} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	kind, ok := ParseKind(c.Params("kind"))
	if !ok {
		return unknownKind(c)
	}

	if err := h.service.Delete(c.Context(), c.Params("character"), kind, c.Params("date")); err != nil {
		return h.fail(c, "Capture delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListDates lists the days a character has captures for.
// @Summary List Capture Dates
// @Tags captures
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Success 200 {object} capture.DatesReport "Capture Dates"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /captures/{character} [get]
func (h *Handler) HandleListDates(c *fiber.Ctx) error {
	report, err := h.service.Dates(c.Context(), c.Params("character"))
	if err != nil {
		return h.fail(c, "Listing capture dates failed", err)
	}
	return c.JSON(report)
}

// HandleGaps lists the days in a window without an equipment capture.
// @Summary List Capture Gaps
// @Description Days in the window that a replay would report as gaps.
// @Tags captures
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} capture.GapReport "Gap Report"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /captures/{character}/gaps [get]
func (h *Handler) HandleGaps(c *fiber.Ctx) error {
	report, err := h.service.Gaps(c.Context(), c.Params("character"), c.Query("from"), c.Query("to"))
	if err != nil {
		return h.fail(c, "Gap check failed", err)
	}
	return c.JSON(report)
}

// HandlePurge deletes every capture of a character.
// @Summary Purge Captures
// @Description Deletes all captures of a character. Requires confirm=true.
// @Tags captures
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param confirm query boolean true "Must be true"
// @Success 200 {object} map[string]interface{} "Purge Result"
// @Failure 400 {object} map[string]string "Not Confirmed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /captures/{character} [delete]
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "purge requires confirm=true"})
	}

	n, err := h.service.Purge(c.Context(), c.Params("character"))
	if err != nil {
		return h.fail(c, "Capture purge failed", err)
	}
	return c.JSON(fiber.Map{"status": "purged", "deleted": n})
}
