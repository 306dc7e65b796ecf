package entity

import "time"

// Shipment es el artefacto generado una única vez cuando una orden llega al
// estado Shipped: guía aérea (airway bill) más una instantánea de la orden.
// La instantánea se congela al momento del despacho; ediciones posteriores de
// la orden no la afectan.
type Shipment struct {
	ID         string
	AirwayBill string // identificador de rastreo, único
	OrderID    string
	Company    string
	Product    string
	Quantity   int64
	ShippedAt  time.Time
}
