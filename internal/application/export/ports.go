package export

import (
	"context"

	"github.com/jhoicas/stockswift-api/internal/domain/entity"
)

// AirwayBillPDFGenerator contrato para la representación PDF de la guía aérea.
// Lo implementa infrastructure/pdf; el uso de interfaz mantiene a maroto fuera
// de la capa de aplicación.
type AirwayBillPDFGenerator interface {
	GenerateAirwayBillPDF(ctx context.Context, shipment *entity.Shipment, order *entity.Order) ([]byte, error)
}
