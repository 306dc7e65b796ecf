// Package reporting contiene el motor de reportes: agregados de solo lectura
// derivados de una instantánea del ledger (inventario, órdenes y despachos).
// Nunca muta estado; puede ejecutarse concurrentemente con otras lecturas.
package reporting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
	"github.com/jhoicas/stockswift-api/pkg/cache"
)

// UseCase motor de reportes. cache es opcional (nil desactiva el caché del
// resumen); now es inyectable para que "hoy" sea determinista en tests.
type UseCase struct {
	itemRepo          repository.InventoryRepository
	orderRepo         repository.OrderRepository
	shipmentRepo      repository.ShipmentRepository
	cache             cache.Cache
	cacheTTL          time.Duration
	lowStockThreshold int64
	now               func() time.Time
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithCache activa el caché del resumen del dashboard.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(uc *UseCase) {
		uc.cache = c
		uc.cacheTTL = ttl
	}
}

// WithClock reemplaza el reloj (tests de ShippedToday).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el motor de reportes.
func NewUseCase(
	itemRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	lowStockThreshold int64,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		itemRepo:          itemRepo,
		orderRepo:         orderRepo,
		shipmentRepo:      shipmentRepo,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
	if uc.lowStockThreshold <= 0 {
		uc.lowStockThreshold = 10
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// TotalInventoryUnits suma de cantidades de todo el inventario.
func (uc *UseCase) TotalInventoryUnits() (int64, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	return total, nil
}

// TotalInventoryValue Σ quantity × unitCost.
func (uc *UseCase) TotalInventoryValue() (decimal.Decimal, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total, nil
}

// OrdersByStatus cuenta órdenes por estado dentro del alcance dado.
func (uc *UseCase) OrdersByStatus(scope dto.Scope) (map[string]int, error) {
	orders, err := uc.listOrders(scope)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, o := range orders {
		counts[string(o.Status)]++
	}
	return counts, nil
}

// TopSellingProduct producto con mayor Σ quantity entre las órdenes del
// alcance. Empate: gana el primero visto por orden de inserción. "N/A" sin órdenes.
func (uc *UseCase) TopSellingProduct(scope dto.Scope) (string, error) {
	orders, err := uc.listOrders(scope)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "N/A", nil
	}
	totals := make(map[string]int64)
	firstSeen := make(map[string]int)
	for i, o := range orders {
		if _, ok := firstSeen[o.Product]; !ok {
			firstSeen[o.Product] = i
		}
		totals[o.Product] += o.Quantity
	}
	best := ""
	for product, qty := range totals {
		if best == "" {
			best = product
			continue
		}
		if qty > totals[best] || (qty == totals[best] && firstSeen[product] < firstSeen[best]) {
			best = product
		}
	}
	return best, nil
}

// InventoryByCategory Σ quantity por categoría.
func (uc *UseCase) InventoryByCategory() (map[string]int64, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	byCat := make(map[string]int64)
	for _, it := range items {
		byCat[it.Category] += it.Quantity
	}
	return byCat, nil
}

// ShippedToday órdenes en estado Shipped cuyo despacho ocurrió en el día
// calendario local del proceso.
func (uc *UseCase) ShippedToday(scope dto.Scope) (int, error) {
	orders, err := uc.listOrders(scope)
	if err != nil {
		return 0, err
	}
	today := uc.now()
	count := 0
	for _, o := range orders {
		if o.Status != entity.StatusShipped {
			continue
		}
		shipment, err := uc.shipmentRepo.GetByOrderID(o.ID)
		if err != nil {
			return 0, err
		}
		if shipment != nil && sameDay(shipment.ShippedAt, today) {
			count++
		}
	}
	return count, nil
}

// LowStockCount artículos con quantity bajo el umbral configurado.
func (uc *UseCase) LowStockCount() (int, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, it := range items {
		if it.Quantity < uc.lowStockThreshold {
			count++
		}
	}
	return count, nil
}

// Summary arma el resumen del dashboard para el alcance dado. Si hay caché
// configurado se sirve la copia cacheada mientras no expire (un fallo del
// caché degrada a calcular en vivo, nunca rompe el reporte).
func (uc *UseCase) Summary(ctx context.Context, scope dto.Scope) (*dto.SummaryReport, error) {
	var cacheKey string
	if uc.cache != nil {
		cacheKey = uc.cache.GenerateKey("summary", scope.Role+":"+scope.Company)
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var cached dto.SummaryReport
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	units, err := uc.TotalInventoryUnits()
	if err != nil {
		return nil, err
	}
	value, err := uc.TotalInventoryValue()
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.OrdersByStatus(scope)
	if err != nil {
		return nil, err
	}
	top, err := uc.TopSellingProduct(scope)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.InventoryByCategory()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.LowStockCount()
	if err != nil {
		return nil, err
	}
	shippedToday, err := uc.ShippedToday(scope)
	if err != nil {
		return nil, err
	}
	totalOrders := 0
	for _, n := range byStatus {
		totalOrders += n
	}

	report := &dto.SummaryReport{
		TotalInventoryUnits: units,
		TotalInventoryValue: value,
		OrdersByStatus:      byStatus,
		TopSellingProduct:   top,
		InventoryByCategory: byCategory,
		LowStockCount:       lowStock,
		ShippedToday:        shippedToday,
		TotalOrders:         totalOrders,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(report); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, uc.cacheTTL)
		}
	}
	return report, nil
}

func (uc *UseCase) listOrders(scope dto.Scope) ([]*entity.Order, error) {
	if scope.Unrestricted() {
		return uc.orderRepo.List()
	}
	return uc.orderRepo.ListByCompany(scope.Company)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
