package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/export"
	"github.com/jhoicas/stockswift-api/internal/domain"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
)

// airwayBillAttempts reintentos ante colisión de número de guía (determinista:
// se genera un identificador fresco y se vuelve a intentar).
const airwayBillAttempts = 3

// UseCase motor de órdenes: ciclo de vida Pending → Processing → Shipped →
// Delivered (estrictamente hacia adelante), generación del despacho al llegar
// a Shipped y cálculo de costo contra el catálogo de inventario vigente.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	itemRepo     repository.InventoryRepository
	pdfGen       export.AirwayBillPDFGenerator
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithPDFGenerator habilita la descarga PDF de la guía aérea.
func WithPDFGenerator(gen export.AirwayBillPDFGenerator) Option {
	return func(uc *UseCase) { uc.pdfGen = gen }
}

// NewUseCase construye el motor de órdenes.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	itemRepo repository.InventoryRepository,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		itemRepo:     itemRepo,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create registra una orden nueva en estado Pending con la fecha actual.
// ErrInvalidInput si quantity <= 0 o company/product vacíos.
func (uc *UseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Company == "" || in.Product == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		Company:      in.Company,
		CustomerName: in.CustomerName,
		Product:      in.Product,
		Quantity:     in.Quantity,
		Status:       entity.StatusPending,
		Date:         now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Transition avanza una orden a newStatus con la fila bloqueada en una
// transacción. Solo se admite avanzar en el ciclo de vida: repetir el estado
// actual o retroceder falla con ErrInvalidTransition y no cambia nada.
//
// En la primera llegada a Shipped genera el despacho (guía aérea única más
// instantánea de company/product/quantity) dentro de la misma transacción y
// lo devuelve al caller; ninguna transición posterior vuelve a generarlo.
func (uc *UseCase) Transition(ctx context.Context, orderID string, newStatus entity.OrderStatus) (*dto.TransitionResponse, error) {
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidTransition
	}
	var (
		updated  *entity.Order
		shipment *entity.Shipment
	)
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.Status.CanTransitionTo(newStatus) {
			return domain.ErrInvalidTransition
		}
		if newStatus == entity.StatusShipped {
			// Invariante: un despacho por orden como máximo. El ciclo de vida ya
			// impide llegar dos veces a Shipped; el chequeo cubre datos históricos.
			existing, err := shipmentRepo.GetByOrderID(order.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				shipment, err = createShipment(shipmentRepo, order)
				if err != nil {
					return err
				}
			}
		}
		order.Status = newStatus
		order.UpdatedAt = time.Now()
		if err := orderRepo.UpdateStatus(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := &dto.TransitionResponse{Order: *toOrderResponse(updated)}
	if shipment != nil {
		resp.Shipment = toShipmentResponse(shipment)
	}
	return resp, nil
}

// createShipment genera la guía aérea y persiste el despacho. Ante una
// colisión del número de guía se reintenta con un identificador fresco.
func createShipment(shipmentRepo repository.ShipmentRepository, order *entity.Order) (*entity.Shipment, error) {
	now := time.Now()
	var lastErr error
	for i := 0; i < airwayBillAttempts; i++ {
		s := &entity.Shipment{
			ID:         uuid.New().String(),
			AirwayBill: newAirwayBill(),
			OrderID:    order.ID,
			Company:    order.Company,
			Product:    order.Product,
			Quantity:   order.Quantity,
			ShippedAt:  now,
		}
		err := shipmentRepo.Create(s)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("generar guía aérea: %w", lastErr)
}

// newAirwayBill genera un número de guía único (AWB-XXXXXXXXXXXX, derivado de
// un UUID v4; reemplaza los identificadores aleatorios cortos propensos a colisión).
func newAirwayBill() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "AWB-" + strings.ToUpper(raw[:12])
}

// CostOf calcula quantity × unitCost buscando el producto de la orden en el
// catálogo vigente, primero por SKU exacto y si no por nombre. Un producto
// fuera de catálogo no es error: el costo desconocido se reporta como cero.
func (uc *UseCase) CostOf(orderID string) (*dto.OrderCostResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetBySKU(order.Product)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item, err = uc.findByName(order.Product)
		if err != nil {
			return nil, err
		}
	}
	cost := decimal.Zero
	if item != nil {
		cost = item.UnitCost.Mul(decimal.NewFromInt(order.Quantity))
	}
	return &dto.OrderCostResponse{OrderID: order.ID, Cost: cost}, nil
}

func (uc *UseCase) findByName(name string) (*entity.InventoryItem, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}

// List devuelve las órdenes visibles para el alcance dado, en orden de
// inserción: staff ve todas, client solo las de su empresa. El motor confía
// en el Scope tal como lo entrega el borde HTTP.
func (uc *UseCase) List(scope dto.Scope) ([]dto.OrderResponse, error) {
	var (
		list []*entity.Order
		err  error
	)
	if scope.Unrestricted() {
		list, err = uc.orderRepo.List()
	} else {
		list, err = uc.orderRepo.ListByCompany(scope.Company)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID devuelve una orden si el alcance puede verla; ErrForbidden si la
// orden pertenece a otra empresa y el caller no es staff.
func (uc *UseCase) GetByID(scope dto.Scope, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.Unrestricted() && order.Company != scope.Company {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// ListShipments devuelve los despachos visibles para el alcance dado.
func (uc *UseCase) ListShipments(scope dto.Scope) ([]dto.ShipmentResponse, error) {
	list, err := uc.shipmentRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		if !scope.Unrestricted() && s.Company != scope.Company {
			continue
		}
		out = append(out, *toShipmentResponse(s))
	}
	return out, nil
}

// ShipmentOfOrder devuelve el despacho de una orden, si existe. ErrNotFound si
// la orden no tiene despacho; ErrForbidden si el alcance no puede verla.
func (uc *UseCase) ShipmentOfOrder(scope dto.Scope, orderID string) (*dto.ShipmentResponse, error) {
	s, _, err := uc.shipmentEntities(scope, orderID)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(s), nil
}

// AirwayBillPDF genera el PDF de la guía aérea del despacho de una orden.
func (uc *UseCase) AirwayBillPDF(ctx context.Context, scope dto.Scope, orderID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("generador PDF no configurado: %w", domain.ErrStorage)
	}
	shipment, order, err := uc.shipmentEntities(scope, orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateAirwayBillPDF(ctx, shipment, order)
}

// shipmentEntities resuelve orden y despacho aplicando el alcance.
func (uc *UseCase) shipmentEntities(scope dto.Scope, orderID string) (*entity.Shipment, *entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !scope.Unrestricted() && order.Company != scope.Company {
		return nil, nil, domain.ErrForbidden
	}
	shipment, err := uc.shipmentRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, nil, err
	}
	if shipment == nil {
		return nil, nil, domain.ErrNotFound
	}
	return shipment, order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Company:      o.Company,
		CustomerName: o.CustomerName,
		Product:      o.Product,
		Quantity:     o.Quantity,
		Status:       string(o.Status),
		Date:         o.Date,
	}
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	if s == nil {
		return nil
	}
	return &dto.ShipmentResponse{
		ID:         s.ID,
		AirwayBill: s.AirwayBill,
		OrderID:    s.OrderID,
		Company:    s.Company,
		Product:    s.Product,
		Quantity:   s.Quantity,
		ShippedAt:  s.ShippedAt,
	}
}
