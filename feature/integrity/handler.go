package integrity

import (
	"errors"

	"gear-tracker/core/logger"
	"gear-tracker/feature/capture"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/captures/:character", h.HandleCaptureCheck)
}

func status(err error) int {
	switch {
	case errors.Is(err, capture.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNoDatabase):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// HandleIntegrityCheck triggers the storage and schema checks.
// @Summary Run All Integrity Checks
// @Description Performs the storage and schema checks. Capture scans run per character.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if storageReport, err := h.service.CheckStorage(c.Context(), false); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storageReport
	}

	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally creates the capture bucket.
// @Summary Check Storage
// @Description Checks that the capture bucket exists and lists the characters it holds. Optionally creates a missing bucket.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStorage(c.Context(), c.QueryBool("fix", false))
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Exists {
		l.Warn("Capture bucket is missing", zap.String("bucket", report.Bucket))
	}

	return c.JSON(report)
}

// HandleCaptureCheck scans the captures of one character.
// @Summary Check Captures
// @Description Downloads and decodes every capture of a character and reports the ones a replay cannot use.
// @Tags integrity
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Success 200 {object} checks.CaptureReport "Capture Report"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/captures/{character} [get]
func (h *Handler) HandleCaptureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting capture integrity check", zap.String("character", c.Params("character")))

	report, err := h.service.CheckCaptures(c.Context(), c.Params("character"))
	if err != nil {
		l.Error("Capture check failed", zap.Error(err))
		return c.Status(status(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Capture check completed",
		zap.Int("checked", report.Checked),
		zap.Int("issues", len(report.Issues)))

	return c.JSON(report)
}

// HandleSchemaCheck checks the history database schema.
// @Summary Check Schema
// @Description Checks if the history database schema matches the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 503 {object} map[string]string "No Database"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(status(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
