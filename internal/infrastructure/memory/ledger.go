// Package memory implementa el ledger completo en memoria: mismo contrato que
// la variante PostgreSQL, pensado para desarrollo local y como doble de test
// de los motores. Un único RWMutex serializa todas las mutaciones (un escritor
// a la vez); las lecturas devuelven copias, nunca referencias al estado interno.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
)

// Ledger almacén en memoria de las colecciones inventory, orders, shipments y users.
type Ledger struct {
	mu        sync.RWMutex
	items     []entity.InventoryItem // orden de inserción
	orders    []entity.Order         // orden de inserción
	shipments []entity.Shipment
	users     []entity.User
}

// NewLedger construye un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{}
}

// snapshot estado clonado para revertir una transacción fallida.
type snapshot struct {
	items     []entity.InventoryItem
	orders    []entity.Order
	shipments []entity.Shipment
}

func (l *Ledger) takeSnapshot() snapshot {
	return snapshot{
		items:     append([]entity.InventoryItem(nil), l.items...),
		orders:    append([]entity.Order(nil), l.orders...),
		shipments: append([]entity.Shipment(nil), l.shipments...),
	}
}

func (l *Ledger) restore(s snapshot) {
	l.items = s.items
	l.orders = s.orders
	l.shipments = s.shipments
}

// ── inventory ─────────────────────────────────────────────────────────────────

func (l *Ledger) createItem(item *entity.InventoryItem) error {
	for i := range l.items {
		if l.items[i].SKU == item.SKU {
			return domain.ErrDuplicateSKU
		}
		if l.items[i].ID == item.ID {
			return domain.ErrDuplicate
		}
	}
	l.items = append(l.items, *item)
	return nil
}

func (l *Ledger) getItemByID(id string) *entity.InventoryItem {
	for i := range l.items {
		if l.items[i].ID == id {
			c := l.items[i]
			return &c
		}
	}
	return nil
}

func (l *Ledger) getItemBySKU(sku string) *entity.InventoryItem {
	for i := range l.items {
		if l.items[i].SKU == sku {
			c := l.items[i]
			return &c
		}
	}
	return nil
}

func (l *Ledger) updateItem(item *entity.InventoryItem) error {
	for i := range l.items {
		if l.items[i].ID == item.ID {
			l.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (l *Ledger) deleteItem(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (l *Ledger) listItems() []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(l.items))
	for i := range l.items {
		c := l.items[i]
		out = append(out, &c)
	}
	return out
}

func (l *Ledger) replaceItems(items []*entity.InventoryItem) {
	l.items = l.items[:0]
	for _, it := range items {
		l.items = append(l.items, *it)
	}
}

// ── orders ────────────────────────────────────────────────────────────────────

func (l *Ledger) createOrder(order *entity.Order) error {
	for i := range l.orders {
		if l.orders[i].ID == order.ID {
			return domain.ErrDuplicate
		}
	}
	l.orders = append(l.orders, *order)
	return nil
}

func (l *Ledger) getOrderByID(id string) *entity.Order {
	for i := range l.orders {
		if l.orders[i].ID == id {
			c := l.orders[i]
			return &c
		}
	}
	return nil
}

func (l *Ledger) updateOrder(order *entity.Order) error {
	for i := range l.orders {
		if l.orders[i].ID == order.ID {
			l.orders[i] = *order
			return nil
		}
	}
	return domain.ErrNotFound
}

func (l *Ledger) listOrders(company string) []*entity.Order {
	out := make([]*entity.Order, 0, len(l.orders))
	for i := range l.orders {
		if company != "" && l.orders[i].Company != company {
			continue
		}
		c := l.orders[i]
		out = append(out, &c)
	}
	// El slice ya está en orden de inserción; el sort estabiliza ante
	// ReplaceAll con datos externos (created_at, id como desempate).
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID < out[b].ID
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out
}

func (l *Ledger) replaceOrders(orders []*entity.Order) {
	l.orders = l.orders[:0]
	for _, o := range orders {
		l.orders = append(l.orders, *o)
	}
}

// ── shipments ─────────────────────────────────────────────────────────────────

func (l *Ledger) createShipment(s *entity.Shipment) error {
	for i := range l.shipments {
		if l.shipments[i].AirwayBill == s.AirwayBill || l.shipments[i].ID == s.ID {
			return domain.ErrDuplicate
		}
		if l.shipments[i].OrderID == s.OrderID {
			return domain.ErrDuplicate
		}
	}
	l.shipments = append(l.shipments, *s)
	return nil
}

func (l *Ledger) getShipmentByID(id string) *entity.Shipment {
	for i := range l.shipments {
		if l.shipments[i].ID == id {
			c := l.shipments[i]
			return &c
		}
	}
	return nil
}

func (l *Ledger) getShipmentByOrderID(orderID string) *entity.Shipment {
	for i := range l.shipments {
		if l.shipments[i].OrderID == orderID {
			c := l.shipments[i]
			return &c
		}
	}
	return nil
}

func (l *Ledger) listShipments() []*entity.Shipment {
	out := make([]*entity.Shipment, 0, len(l.shipments))
	for i := range l.shipments {
		c := l.shipments[i]
		out = append(out, &c)
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func (l *Ledger) createUser(u *entity.User) error {
	for i := range l.users {
		if l.users[i].Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	l.users = append(l.users, *u)
	return nil
}

func (l *Ledger) findUserByEmail(email string) *entity.User {
	for i := range l.users {
		if l.users[i].Email == email {
			c := l.users[i]
			return &c
		}
	}
	return nil
}
