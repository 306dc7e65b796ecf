package repository

import "github.com/jhoicas/stockswift-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// List y ListByCompany preservan el orden de inserción (created_at, id).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(order *entity.Order) error
	List() ([]*entity.Order, error)
	ListByCompany(company string) ([]*entity.Order, error)
	ReplaceAll(orders []*entity.Order) error
	// GetForUpdate bloquea la fila de la orden dentro de una transacción;
	// garantiza que dos transiciones de estado no se intercalen sobre la misma orden.
	GetForUpdate(id string) (*entity.Order, error)
}
