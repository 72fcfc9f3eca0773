package history

import (
	"errors"
	"strings"

	"gear-tracker/core/logger"
	"gear-tracker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the change history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/:character", h.HandleList)
	group.Post("/:character/replay", h.HandleReplay)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleList returns the recorded changes of a character.
// @Summary List Equipment Changes
// @Description Lists recorded equipment changes ordered by date.
// @Tags history
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param kind query string false "new_item, replace or option_change"
// @Success 200 {array} reconcile.ChangeEvent "Changes"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{character} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	events, err := h.service.History(c.Context(), c.Params("character"), c.Query("from"), c.Query("to"), c.Query("kind"))
	if err != nil {
		return h.fail(c, "Listing changes failed", err)
	}
	return c.JSON(events)
}

// HandleReplay replays a window of captures and records the changes found.
// @Summary Replay Captures
// @Description Reconciles every day in the window against the history before it. Replaying a window again records nothing new.
// @Tags history
// @Produce json
// @Param character path string true "Character ID (ocid)"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Param name query string false "Character display name"
// @Param dry_run query boolean false "Compute the plan without recording"
// @Param rebuild query boolean false "Delete recorded changes of the window first"
// @Success 200 {object} history.ReplayResult "Replay Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{character}/replay [post]
func (h *Handler) HandleReplay(c *fiber.Ctx) error {
	req := ReplayRequest{
		Character: reconcile.Character{ID: c.Params("character"), Name: strings.TrimSpace(c.Query("name"))},
		From:      c.Query("from"),
		To:        c.Query("to"),
		DryRun:    c.QueryBool("dry_run", false),
		Rebuild:   c.QueryBool("rebuild", false),
	}

	result, err := h.service.Replay(c.Context(), req)
	if err != nil {
		return h.fail(c, "Replay failed", err)
	}
	return c.JSON(result)
}
