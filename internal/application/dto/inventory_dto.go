package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest body para POST /api/inventory.
type AddItemRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// AdjustQuantityRequest body para POST /api/inventory/{id}/adjust.
// Delta positivo suma stock, negativo resta; nunca se permite quedar bajo cero.
type AdjustQuantityRequest struct {
	Delta int64 `json:"delta"`
}

// InventoryItemResponse representación HTTP de un artículo.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SkippedRow una fila rechazada durante la importación masiva.
type SkippedRow struct {
	Line   int    `json:"line"` // número de línea en el archivo (1 = encabezado)
	Reason string `json:"reason"`
}

// ImportReport resultado de una importación masiva: éxito parcial esperado,
// nunca se aborta el lote completo por filas malformadas.
type ImportReport struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}
