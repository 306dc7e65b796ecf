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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentColumns = "id, airway_bill, order_id, company, product, quantity, shipped_at"

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de persistencia para despachos.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste un despacho. airway_bill y order_id tienen constraint único:
// la invariante "un despacho por orden" también la aplica la base.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, airway_bill, order_id, company, product, quantity, shipped_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.AirwayBill, s.OrderID, s.Company, s.Product, s.Quantity, s.ShippedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un despacho por ID. Devuelve nil, nil si no existe.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shipment")
}

// GetByOrderID obtiene el despacho de una orden. Devuelve nil, nil si la orden
// aún no fue despachada.
func (r *ShipmentRepo) GetByOrderID(orderID string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE order_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, orderID), "get shipment by order")
}

// List lista todos los despachos, los más recientes primero.
func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY shipped_at DESC, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.AirwayBill, &s.OrderID, &s.Company, &s.Product,
			&s.Quantity, &s.ShippedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *ShipmentRepo) scanOne(row pgx.Row, op string) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(&s.ID, &s.AirwayBill, &s.OrderID, &s.Company, &s.Product, &s.Quantity, &s.ShippedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
