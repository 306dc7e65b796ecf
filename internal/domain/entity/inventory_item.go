package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario identificado por SKU.
// Quantity nunca es negativa: toda resta que la dejaría bajo cero se rechaza
// en el motor de inventario antes de persistir.
type InventoryItem struct {
	ID        string
	SKU       string // único en todo el inventario, comparación exacta sensible a mayúsculas
	Name      string
	Category  string
	Quantity  int64
	UnitCost  decimal.Decimal // costo unitario, nunca negativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
