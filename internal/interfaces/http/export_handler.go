package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/export"
	"github.com/jhoicas/stockswift-api/internal/application/inventory"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
)

// ExportHandler descargas CSV de inventario, órdenes y resumen.
type ExportHandler struct {
	inventoryUC *inventory.UseCase
	ordersUC    *orders.UseCase
	reportingUC *reporting.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(
	inventoryUC *inventory.UseCase,
	ordersUC *orders.UseCase,
	reportingUC *reporting.UseCase,
) *ExportHandler {
	return &ExportHandler{
		inventoryUC: inventoryUC,
		ordersUC:    ordersUC,
		reportingUC: reportingUC,
	}
}

// InventoryCSV godoc
// @Summary      Exportar inventario a CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/inventory.csv [get]
func (h *ExportHandler) InventoryCSV(c *fiber.Ctx) error {
	items, err := h.inventoryUC.List()
	if err != nil {
		return exportError(c, err)
	}
	data, err := export.InventoryCSV(items)
	if err != nil {
		return exportError(c, err)
	}
	return sendCSV(c, "inventory", data)
}

// OrdersCSV godoc
// @Summary      Exportar órdenes a CSV
// @Description  Exporta solo las órdenes visibles para el caller.
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/orders.csv [get]
func (h *ExportHandler) OrdersCSV(c *fiber.Ctx) error {
	list, err := h.ordersUC.List(ScopeFrom(c))
	if err != nil {
		return exportError(c, err)
	}
	data, err := export.OrdersCSV(list)
	if err != nil {
		return exportError(c, err)
	}
	return sendCSV(c, "orders", data)
}

// ReportCSV godoc
// @Summary      Exportar resumen a CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/report.csv [get]
func (h *ExportHandler) ReportCSV(c *fiber.Ctx) error {
	report, err := h.reportingUC.Summary(c.Context(), ScopeFrom(c))
	if err != nil {
		return exportError(c, err)
	}
	data, err := export.ReportCSV(report)
	if err != nil {
		return exportError(c, err)
	}
	return sendCSV(c, "report", data)
}

func sendCSV(c *fiber.Ctx, name string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func exportError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
