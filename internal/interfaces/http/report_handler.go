package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
)

// ReportHandler expone el resumen del dashboard y las métricas individuales.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Agregados derivados de una instantánea del ledger, acotados al alcance del caller.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryReport
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), ScopeFrom(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// OrdersByStatus godoc
// @Summary      Conteo de órdenes por estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/reports/orders-by-status [get]
func (h *ReportHandler) OrdersByStatus(c *fiber.Ctx) error {
	out, err := h.uc.OrdersByStatus(ScopeFrom(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// TopSellingProduct godoc
// @Summary      Producto más vendido
// @Description  Mayor Σ quantity entre las órdenes visibles. "N/A" sin órdenes.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/reports/top-product [get]
func (h *ReportHandler) TopSellingProduct(c *fiber.Ctx) error {
	top, err := h.uc.TopSellingProduct(ScopeFrom(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(fiber.Map{"top_selling_product": top})
}

// InventoryByCategory godoc
// @Summary      Inventario por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/reports/inventory-by-category [get]
func (h *ReportHandler) InventoryByCategory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryByCategory()
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// ShippedToday godoc
// @Summary      Órdenes despachadas hoy
// @Description  Órdenes en Shipped cuyo despacho ocurrió en el día calendario local.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/reports/shipped-today [get]
func (h *ReportHandler) ShippedToday(c *fiber.Ctx) error {
	count, err := h.uc.ShippedToday(ScopeFrom(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(fiber.Map{"shipped_today": count})
}

func reportError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
