package handlers

import (
	"bytes"
	"context"
	"strconv"

	"moviegrid/internal/catalog"
	"moviegrid/internal/render"
	"moviegrid/internal/repository"
	"moviegrid/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	view     *catalog.View
	renderer *render.Renderer
	repo     repository.FetchLogRepository
	logger   *logrus.Logger
}

// NewCatalogHandler wires the handler. repo may be nil when the service runs
// without a database; fetch-log endpoints then report unavailability.
func NewCatalogHandler(view *catalog.View, renderer *render.Renderer, repo repository.FetchLogRepository, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		view:     view,
		renderer: renderer,
		repo:     repo,
		logger:   logger,
	}
}

// GetMovies godoc
// @Summary Get the movie grid
// @Description Get the view status and the ordered cards of the last successful fetch
// @Tags movies
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Movie grid"
// @Router /movies [get]
func (h *CatalogHandler) GetMovies(c *fiber.Ctx) error {
	snap := h.view.Snapshot()

	resp := MovieListResponse{
		ViewStatus: string(snap.Status),
		LastError:  snap.LastError,
		Cards:      h.renderer.Cards(snap.Movies),
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", resp)
}

// RefreshMovies godoc
// @Summary Refresh the movie grid
// @Description Re-activate the view: issue a new catalog fetch; a previous in-flight fetch is superseded
// @Tags movies
// @Accept json
// @Produce json
// @Success 202 {object} utils.StandardResponse "Refresh started"
// @Router /movies/refresh [post]
func (h *CatalogHandler) RefreshMovies(c *fiber.Ctx) error {
	h.logger.Info("Refresh requested")
	// The fetch outlives the request, so it must not inherit the request
	// context.
	h.view.Activate(context.Background())

	return utils.SuccessResponse(c, fiber.StatusAccepted, "Movie refresh started", fiber.Map{
		"view_status": string(catalog.StatusLoading),
	})
}

// GetGrid serves the server-rendered HTML grid page.
func (h *CatalogHandler) GetGrid(c *fiber.Ctx) error {
	snap := h.view.Snapshot()

	var buf bytes.Buffer
	if err := h.renderer.Grid(&buf, snap); err != nil {
		h.logger.WithError(err).Error("Failed to render grid")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render grid")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// GetLastFetchLog godoc
// @Summary Get last fetch log
// @Description Get the diagnostic record of the most recent catalog fetch
// @Tags fetch-logs
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Last fetch log"
// @Failure 503 {object} utils.StandardResponse "Fetch logging unavailable"
// @Router /fetch-logs/last [get]
func (h *CatalogHandler) GetLastFetchLog(c *fiber.Ctx) error {
	if h.repo == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Fetch logging is not available")
	}

	log, err := h.repo.GetLast(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get last fetch log")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve last fetch log")
	}

	if log == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No fetch log found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Last fetch log retrieved successfully", log)
}

// GetFetchLogs godoc
// @Summary Get recent fetch logs
// @Description Get diagnostic records of recent catalog fetches
// @Tags fetch-logs
// @Accept json
// @Produce json
// @Param limit query int false "Max records" default(20)
// @Success 200 {object} utils.StandardResponse "Fetch logs"
// @Failure 503 {object} utils.StandardResponse "Fetch logging unavailable"
// @Router /fetch-logs [get]
func (h *CatalogHandler) GetFetchLogs(c *fiber.Ctx) error {
	if h.repo == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Fetch logging is not available")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	logs, err := h.repo.FindRecent(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get fetch logs")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve fetch logs")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Fetch logs retrieved successfully", logs)
}
