package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = "id, sku, name, category, quantity, unit_cost, created_at, updated_at"

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un artículo nuevo. La unicidad del SKU la garantiza el
// constraint único; una violación se traduce a ErrDuplicateSKU.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, category, quantity, unit_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Category, item.Quantity, item.UnitCost,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetBySKU obtiene un artículo por SKU (comparación exacta).
func (r *InventoryRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get inventory item by sku")
}

// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) para ajustes
// de cantidad sin condiciones de carrera. Debe usarse dentro de una tx.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "lock inventory item")
}

// Update actualiza cantidad, costo y datos descriptivos de un artículo.
// El SKU es inmutable después de la creación.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, quantity = $4, unit_cost = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.UnitCost, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *InventoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el inventario completo en orden de inserción.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.Category, &it.Quantity, &it.UnitCost,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ReplaceAll reemplaza la colección completa (restauración/seed). Debe
// ejecutarse dentro de una transacción para ser atómico.
func (r *InventoryRepo) ReplaceAll(items []*entity.InventoryItem) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items`); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}
	for _, it := range items {
		if err := r.Create(it); err != nil {
			return err
		}
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.SKU, &it.Name, &it.Category, &it.Quantity, &it.UnitCost,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
