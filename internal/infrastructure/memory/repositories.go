package memory

import (
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

// Los repos en memoria son vistas sobre el mismo Ledger. Con locked=true
// operan dentro de una transacción (el TxRunner ya sostiene el lock); con
// locked=false toman el lock por operación.

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
var _ repository.OrderRepository = (*OrderRepo)(nil)
var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)
var _ repository.UserRepository = (*UserRepo)(nil)

// InventoryRepo adaptador en memoria del puerto InventoryRepository.
type InventoryRepo struct {
	ledger *Ledger
	locked bool
}

// NewInventoryRepository construye el adaptador sobre el ledger compartido.
func NewInventoryRepository(l *Ledger) *InventoryRepo {
	return &InventoryRepo{ledger: l}
}

func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	if r.locked {
		return r.ledger.createItem(item)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.createItem(item)
}

func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	if r.locked {
		return r.ledger.getItemByID(id), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.getItemByID(id), nil
}

func (r *InventoryRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	if r.locked {
		return r.ledger.getItemBySKU(sku), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.getItemBySKU(sku), nil
}

// GetForUpdate en memoria equivale a GetByID: el TxRunner ya sostiene el lock
// exclusivo del ledger, así que la fila no puede cambiar bajo el caller.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	if r.locked {
		return r.ledger.updateItem(item)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.updateItem(item)
}

func (r *InventoryRepo) Delete(id string) error {
	if r.locked {
		return r.ledger.deleteItem(id)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.deleteItem(id)
}

func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	if r.locked {
		return r.ledger.listItems(), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.listItems(), nil
}

func (r *InventoryRepo) ReplaceAll(items []*entity.InventoryItem) error {
	if r.locked {
		r.ledger.replaceItems(items)
		return nil
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	r.ledger.replaceItems(items)
	return nil
}

// OrderRepo adaptador en memoria del puerto OrderRepository.
type OrderRepo struct {
	ledger *Ledger
	locked bool
}

// NewOrderRepository construye el adaptador sobre el ledger compartido.
func NewOrderRepository(l *Ledger) *OrderRepo {
	return &OrderRepo{ledger: l}
}

func (r *OrderRepo) Create(order *entity.Order) error {
	if r.locked {
		return r.ledger.createOrder(order)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.createOrder(order)
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	if r.locked {
		return r.ledger.getOrderByID(id), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.getOrderByID(id), nil
}

// GetForUpdate ver nota en InventoryRepo.GetForUpdate.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *OrderRepo) UpdateStatus(order *entity.Order) error {
	if r.locked {
		return r.ledger.updateOrder(order)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.updateOrder(order)
}

func (r *OrderRepo) List() ([]*entity.Order, error) {
	if r.locked {
		return r.ledger.listOrders(""), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.listOrders(""), nil
}

func (r *OrderRepo) ListByCompany(company string) ([]*entity.Order, error) {
	if r.locked {
		return r.ledger.listOrders(company), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.listOrders(company), nil
}

func (r *OrderRepo) ReplaceAll(orders []*entity.Order) error {
	if r.locked {
		r.ledger.replaceOrders(orders)
		return nil
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	r.ledger.replaceOrders(orders)
	return nil
}

// ShipmentRepo adaptador en memoria del puerto ShipmentRepository.
type ShipmentRepo struct {
	ledger *Ledger
	locked bool
}

// NewShipmentRepository construye el adaptador sobre el ledger compartido.
func NewShipmentRepository(l *Ledger) *ShipmentRepo {
	return &ShipmentRepo{ledger: l}
}

func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	if r.locked {
		return r.ledger.createShipment(s)
	}
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.createShipment(s)
}

func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	if r.locked {
		return r.ledger.getShipmentByID(id), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.getShipmentByID(id), nil
}

func (r *ShipmentRepo) GetByOrderID(orderID string) (*entity.Shipment, error) {
	if r.locked {
		return r.ledger.getShipmentByOrderID(orderID), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.getShipmentByOrderID(orderID), nil
}

func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	if r.locked {
		return r.ledger.listShipments(), nil
	}
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.listShipments(), nil
}

// UserRepo adaptador en memoria del puerto UserRepository.
type UserRepo struct {
	ledger *Ledger
}

// NewUserRepository construye el adaptador sobre el ledger compartido.
func NewUserRepository(l *Ledger) *UserRepo {
	return &UserRepo{ledger: l}
}

func (r *UserRepo) Create(u *entity.User) error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.createUser(u)
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.ledger.mu.RLock()
	defer r.ledger.mu.RUnlock()
	return r.ledger.findUserByEmail(email), nil
}
