package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impacto-api/internal/application/dashboard"
	"github.com/jhoicas/Impacto-api/internal/application/dto"
	"github.com/jhoicas/Impacto-api/internal/domain"
)

// DashboardHandler maneja el dashboard organizacional, su refresh, el reporte
// PDF y la geolocalización de eventos (protegido).
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard de impacto organizacional
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recomputar snapshot y reponer oportunidades externas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.Context())
	if err != nil {
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Report(c.Context())
	if err != nil {
		return dashboardError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="impact-report.pdf"`)
	return c.Send(pdfBytes)
}

// GeoPin godoc
// @Summary      Geolocalizar un evento por nombre de ubicación
// @Tags         geo
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  true  "Ubicación a resolver"
// @Success      200  {object}  dto.GeoPinResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/geo/pin [get]
func (h *DashboardHandler) GeoPin(c *fiber.Ctx) error {
	out, err := h.uc.GeoPin(c.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación sin resultado"})
		}
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

func dashboardError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "organización no inicializada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
