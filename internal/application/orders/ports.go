package orders

import (
	"context"

	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del ledger, pasando
// repositorios de órdenes y despachos atados a esa transacción. La transición
// de estado y la generación del despacho se confirman o revierten juntas.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}
