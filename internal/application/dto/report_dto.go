package dto

import "github.com/shopspring/decimal"

// SummaryReport agregados del dashboard. Todos derivados de una instantánea
// del ledger; no muta estado.
type SummaryReport struct {
	TotalInventoryUnits int64            `json:"total_inventory_units"`
	TotalInventoryValue decimal.Decimal  `json:"total_inventory_value"`
	OrdersByStatus      map[string]int   `json:"orders_by_status"`
	TopSellingProduct   string           `json:"top_selling_product"` // "N/A" sin órdenes
	InventoryByCategory map[string]int64 `json:"inventory_by_category"`
	LowStockCount       int              `json:"low_stock_count"`
	ShippedToday        int              `json:"shipped_today"`
	TotalOrders         int              `json:"total_orders"`
}
