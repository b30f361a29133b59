package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/analytics"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/dto"
)

// DashboardHandler expone las métricas agregadas del dashboard (protegido).
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	rfm       *analytics.RFMUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, rfm *analytics.RFMUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, rfm: rfm}
}

// KPIs godoc
// @Summary      KPIs financieros globales
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.KPIResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.dashboard.GetKPIs(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ClientProfitability godoc
// @Summary      Rentabilidad por cliente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientProfitabilityDTO
// @Router       /api/dashboard/client-profitability [get]
func (h *DashboardHandler) ClientProfitability(c *fiber.Ctx) error {
	out, err := h.dashboard.GetClientProfitability(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevenueByMonth godoc
// @Summary      Ingresos por mes (últimos 12 meses)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RevenueByMonthDTO
// @Router       /api/dashboard/revenue-by-month [get]
func (h *DashboardHandler) RevenueByMonth(c *fiber.Ctx) error {
	out, err := h.dashboard.GetRevenueByMonth(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RFM godoc
// @Summary      Segmentación RFM de clientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RFMRowDTO
// @Router       /api/dashboard/rfm [get]
func (h *DashboardHandler) RFM(c *fiber.Ctx) error {
	out, err := h.rfm.GetSegmentation(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
