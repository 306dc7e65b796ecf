package inventory

import (
	"context"

	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del ledger, pasando un
// repositorio atado a esa transacción. Garantiza que los ajustes de cantidad
// sean atómicos: o se aplican y quedan durables, o no dejan rastro.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.InventoryRepository) error) error
}
