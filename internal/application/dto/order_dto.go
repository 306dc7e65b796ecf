package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Company      string `json:"company"`
	CustomerName string `json:"customer_name"`
	Product      string `json:"product"`
	Quantity     int64  `json:"quantity"`
}

// TransitionRequest body para PATCH /api/orders/{id}/status.
type TransitionRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación HTTP de una orden.
type OrderResponse struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	CustomerName string    `json:"customer_name"`
	Product      string    `json:"product"`
	Quantity     int64     `json:"quantity"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}

// ShipmentResponse artefacto de despacho devuelto al transicionar a Shipped.
type ShipmentResponse struct {
	ID         string    `json:"id"`
	AirwayBill string    `json:"airway_bill"`
	OrderID    string    `json:"order_id"`
	Company    string    `json:"company"`
	Product    string    `json:"product"`
	Quantity   int64     `json:"quantity"`
	ShippedAt  time.Time `json:"shipped_at"`
}

// TransitionResponse orden actualizada más el despacho generado (solo en la
// primera llegada a Shipped; nil en el resto de transiciones).
type TransitionResponse struct {
	Order    OrderResponse     `json:"order"`
	Shipment *ShipmentResponse `json:"shipment,omitempty"`
}

// OrderCostResponse costo calculado de una orden contra el catálogo actual.
type OrderCostResponse struct {
	OrderID string          `json:"order_id"`
	Cost    decimal.Decimal `json:"cost"` // 0 si el producto no está en catálogo
}
