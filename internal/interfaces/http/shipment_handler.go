package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/export"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/domain"
)

// ShipmentHandler expone los despachos y las descargas de la guía aérea.
type ShipmentHandler struct {
	uc *orders.UseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *orders.UseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar despachos
// @Description  Staff ve todos los despachos; client solo los de su empresa.
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ShipmentResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListShipments(ScopeFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByOrder godoc
// @Summary      Despacho de una orden
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/shipment [get]
func (h *ShipmentHandler) GetByOrder(c *fiber.Ctx) error {
	out, err := h.uc.ShipmentOfOrder(ScopeFrom(c), c.Params("id"))
	if err != nil {
		return shipmentError(c, err)
	}
	return c.JSON(out)
}

// AirwayBillText godoc
// @Summary      Guía aérea en texto plano
// @Tags         shipments
// @Security     Bearer
// @Produce      plain
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/airway-bill [get]
func (h *ShipmentHandler) AirwayBillText(c *fiber.Ctx) error {
	shipment, err := h.uc.ShipmentOfOrder(ScopeFrom(c), c.Params("id"))
	if err != nil {
		return shipmentError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.txt"`, shipment.AirwayBill))
	return c.Send(export.ShipmentText(shipment))
}

// AirwayBillPDF godoc
// @Summary      Guía aérea en PDF
// @Tags         shipments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/airway-bill.pdf [get]
func (h *ShipmentHandler) AirwayBillPDF(c *fiber.Ctx) error {
	scope := ScopeFrom(c)
	pdfBytes, err := h.uc.AirwayBillPDF(c.Context(), scope, c.Params("id"))
	if err != nil {
		return shipmentError(c, err)
	}
	shipment, err := h.uc.ShipmentOfOrder(scope, c.Params("id"))
	if err != nil {
		return shipmentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, shipment.AirwayBill))
	return c.Send(pdfBytes)
}

func shipmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la orden no existe o aún no tiene despacho"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el despacho pertenece a otra empresa"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
