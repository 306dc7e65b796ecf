// Package export serializa salidas de los motores a CSV y texto plano para
// descarga. Serialización pura: no toca el ledger ni hace I/O.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
)

// Encabezados de los archivos exportados.
var (
	inventoryHeader = []string{"SKU", "Name", "Category", "Quantity", "Unit Cost"}
	ordersHeader    = []string{"ID", "Customer", "Product", "Quantity", "Status", "Date", "Company"}
	reportHeader    = []string{"Metric", "Value"}
)

// InventoryCSV serializa el inventario con el encabezado
// SKU,Name,Category,Quantity,Unit Cost.
func InventoryCSV(items []dto.InventoryItemResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(inventoryHeader); err != nil {
		return nil, err
	}
	for _, it := range items {
		row := []string{
			it.SKU,
			it.Name,
			it.Category,
			strconv.FormatInt(it.Quantity, 10),
			it.UnitCost.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// OrdersCSV serializa las órdenes visibles para el caller con el encabezado
// ID,Customer,Product,Quantity,Status,Date,Company.
func OrdersCSV(orders []dto.OrderResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ordersHeader); err != nil {
		return nil, err
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.CustomerName,
			o.Product,
			strconv.FormatInt(o.Quantity, 10),
			o.Status,
			o.Date.Format("2006-01-02"),
			o.Company,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ReportCSV serializa el resumen del dashboard como pares Metric,Value.
func ReportCSV(r *dto.SummaryReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		reportHeader,
		{"Total Orders", strconv.Itoa(r.TotalOrders)},
		{"Total Inventory Units", strconv.FormatInt(r.TotalInventoryUnits, 10)},
		{"Total Inventory Value", r.TotalInventoryValue.String()},
		{"Top Selling Product", r.TopSellingProduct},
		{"Low Stock Items", strconv.Itoa(r.LowStockCount)},
		{"Shipped Today", strconv.Itoa(r.ShippedToday)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ShipmentText serializa el despacho como registro de texto plano con los
// campos de la guía aérea.
func ShipmentText(s *dto.ShipmentResponse) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Airway Bill Number: %s\n", s.AirwayBill)
	fmt.Fprintf(&buf, "Order ID: %s\n", s.OrderID)
	fmt.Fprintf(&buf, "Company: %s\n", s.Company)
	fmt.Fprintf(&buf, "Product: %s\n", s.Product)
	fmt.Fprintf(&buf, "Quantity: %d\n", s.Quantity)
	fmt.Fprintf(&buf, "Shipping Date: %s\n", s.ShippedAt.Format("2006-01-02"))
	return buf.Bytes()
}
