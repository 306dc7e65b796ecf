package memory

import (
	"context"

	"github.com/jhoicas/stockswift-api/internal/application/inventory"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con el lock exclusivo del ledger sostenido
// durante toda la transacción. Antes de ejecutar toma una instantánea de las
// colecciones; si fn falla, restaura el estado previo (todo-o-nada, como el
// Commit/Rollback de la variante PostgreSQL).
type TxRunner struct {
	ledger *Ledger
}

// NewTxRunner construye el runner sobre el ledger compartido.
func NewTxRunner(l *Ledger) *TxRunner {
	return &TxRunner{ledger: l}
}

// Run transacción de inventario.
func (r *TxRunner) Run(_ context.Context, fn func(itemRepo repository.InventoryRepository) error) error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	snap := r.ledger.takeSnapshot()
	if err := fn(&InventoryRepo{ledger: r.ledger, locked: true}); err != nil {
		r.ledger.restore(snap)
		return err
	}
	return nil
}

// RunOrder transacción de órdenes y despachos.
func (r *TxRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
) error) error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	snap := r.ledger.takeSnapshot()
	err := fn(
		&OrderRepo{ledger: r.ledger, locked: true},
		&ShipmentRepo{ledger: r.ledger, locked: true},
	)
	if err != nil {
		r.ledger.restore(snap)
		return err
	}
	return nil
}
