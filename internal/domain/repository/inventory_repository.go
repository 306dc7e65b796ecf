package repository

import "github.com/jhoicas/stockswift-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// List devuelve los artículos en orden de inserción (created_at, id).
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	List() ([]*entity.InventoryItem, error)
	ReplaceAll(items []*entity.InventoryItem) error
	// GetForUpdate bloquea la fila del artículo dentro de una transacción
	// (SELECT FOR UPDATE) para ajustes de cantidad sin condiciones de carrera.
	GetForUpdate(id string) (*entity.InventoryItem, error)
}
