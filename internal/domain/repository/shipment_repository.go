package repository

import "github.com/jhoicas/stockswift-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	// GetByOrderID devuelve nil, nil si la orden aún no tiene despacho.
	GetByOrderID(orderID string) (*entity.Shipment, error)
	List() ([]*entity.Shipment, error)
}
