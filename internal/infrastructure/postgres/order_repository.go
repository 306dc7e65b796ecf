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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = "id, company, customer_name, product, quantity, status, date, created_at, updated_at"

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company, customer_name, product, quantity, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Company, order.CustomerName, order.Product, order.Quantity,
		string(order.Status), order.Date, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order")
}

// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE); dos
// transiciones concurrentes sobre la misma orden se serializan aquí.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "lock order")
}

// UpdateStatus persiste el nuevo estado de la orden. Solo status y updated_at
// cambian: company, product, quantity y date son inmutables.
func (r *OrderRepo) UpdateStatus(order *entity.Order) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		order.ID, string(order.Status), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las órdenes en orden de inserción.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at, id`
	return r.scanMany(query)
}

// ListByCompany lista las órdenes de una empresa en orden de inserción.
func (r *OrderRepo) ListByCompany(company string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE company = $1 ORDER BY created_at, id`
	return r.scanMany(query, company)
}

// ReplaceAll reemplaza la colección completa (restauración/seed).
func (r *OrderRepo) ReplaceAll(orders []*entity.Order) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	for _, o := range orders {
		if err := r.Create(o); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) scanMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.Company, &o.CustomerName, &o.Product, &o.Quantity,
			&status, &o.Date, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *OrderRepo) scanOne(row pgx.Row, op string) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := row.Scan(&o.ID, &o.Company, &o.CustomerName, &o.Product, &o.Quantity,
		&status, &o.Date, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
