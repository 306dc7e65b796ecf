// Package pdf implementa la representación imprimible de la guía aérea
// (airway bill) de un despacho usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockSwift  │  N° de guía + código de barras        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORDEN: ID / Empresa / Cliente                               │
//	│  CARGA: Producto / Cantidad / Fecha de despacho              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockswift-api/internal/application/export"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 124}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoAirwayBillGenerator implementa export.AirwayBillPDFGenerator usando Maroto v2.
type MarotoAirwayBillGenerator struct{}

var _ export.AirwayBillPDFGenerator = (*MarotoAirwayBillGenerator)(nil)

// NewMarotoAirwayBillGenerator construye el generador.
func NewMarotoAirwayBillGenerator() *MarotoAirwayBillGenerator {
	return &MarotoAirwayBillGenerator{}
}

// GenerateAirwayBillPDF genera el PDF de la guía y devuelve sus bytes.
func (g *MarotoAirwayBillGenerator) GenerateAirwayBillPDF(
	_ context.Context,
	shipment *entity.Shipment,
	order *entity.Order,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Airway Bill "+shipment.AirwayBill, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shipment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(orderRows(shipment, order)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(cargoRows(shipment)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar guía aérea: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca (izq) y número de guía con código de barras (der).
func headerRow(shipment *entity.Shipment) core.Row {
	return row.New(22).Add(
		col.New(6).Add(
			text.New("StockSwift", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 2,
			}),
			text.New("Warehouse & Shipping", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(shipment.AirwayBill, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			code.NewBar(shipment.AirwayBill, props.Barcode{
				Top: 7, Percent: 80, Proportion: props.Proportion{Width: 30, Height: 6},
			}),
		),
	)
}

func orderRows(shipment *entity.Shipment, order *entity.Order) []core.Row {
	customer := ""
	if order != nil {
		customer = order.CustomerName
	}
	return []core.Row{
		labelValueRow("Order ID", shipment.OrderID),
		labelValueRow("Company", shipment.Company),
		labelValueRow("Customer", customer),
	}
}

func cargoRows(shipment *entity.Shipment) []core.Row {
	return []core.Row{
		labelValueRow("Product", shipment.Product),
		labelValueRow("Quantity", fmt.Sprintf("%d", shipment.Quantity)),
		labelValueRow("Shipping Date", shipment.ShippedAt.Format("02/01/2006")),
	}
}

func labelValueRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
		col.New(9).Add(text.New(value, props.Text{Size: 10, Top: 1})),
	)
}
