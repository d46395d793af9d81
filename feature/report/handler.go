package report

import (
	"retail-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reports")
	group.Post("/generate", h.HandleGenerate)
	group.Get("/download/:name", h.HandleDownload)
}

// HandleGenerate generates a new report.
// @Summary Generate Report
// @Description Builds a CSV report over the current order snapshot and saves it to the file share.
// @Tags reports
// @Accept json
// @Produce json
// @Param type query string false "Report type" default(Sales)
// @Success 201 {object} Result "Generated report"
// @Failure 500 {object} map[string]string "Generation failed"
// @Router /reports/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	reportType := c.Query("type", "Sales")
	result, ok := h.service.Generate(c.Context(), reportType)
	if !ok {
		l.Error("Report generation failed", zap.String("type", reportType))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate report"})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleDownload returns a stored report as CSV text.
// @Summary Download Report
// @Description Retrieves a previously generated report by file name.
// @Tags reports
// @Produce text/csv
// @Param name path string true "Report file name"
// @Success 200 {string} string "Report content"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/download/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name := c.Params("name")

	content, ok := h.service.Download(c.Context(), name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.SendString(content)
}
