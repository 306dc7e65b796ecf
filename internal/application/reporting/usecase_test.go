package reporting_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockswift-api/internal/application/dto"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/memory"
)

var staffScope = dto.Scope{Role: entity.RoleStaff}

// fixture repos en memoria con helpers para sembrar el ledger directamente.
type fixture struct {
	ledger *memory.Ledger
	seq    int
}

func newFixture() *fixture {
	return &fixture{ledger: memory.NewLedger()}
}

func (f *fixture) useCase(opts ...reporting.Option) *reporting.UseCase {
	return reporting.NewUseCase(
		memory.NewInventoryRepository(f.ledger),
		memory.NewOrderRepository(f.ledger),
		memory.NewShipmentRepository(f.ledger),
		0,
		opts...,
	)
}

func (f *fixture) addItem(t *testing.T, sku, category string, qty int64, cost string) {
	t.Helper()
	f.seq++
	require.NoError(t, memory.NewInventoryRepository(f.ledger).Create(&entity.InventoryItem{
		ID:       fmt.Sprintf("item-%d", f.seq),
		SKU:      sku,
		Name:     sku,
		Category: category,
		Quantity: qty,
		UnitCost: decimal.RequireFromString(cost),
	}))
}

func (f *fixture) addOrder(t *testing.T, company, product string, qty int64, status entity.OrderStatus) *entity.Order {
	t.Helper()
	f.seq++
	o := &entity.Order{
		ID:        fmt.Sprintf("order-%d", f.seq),
		Company:   company,
		Product:   product,
		Quantity:  qty,
		Status:    status,
		Date:      time.Now(),
		CreatedAt: time.Now().Add(time.Duration(f.seq) * time.Millisecond),
	}
	require.NoError(t, memory.NewOrderRepository(f.ledger).Create(o))
	return o
}

func (f *fixture) addShipment(t *testing.T, order *entity.Order, shippedAt time.Time) {
	t.Helper()
	f.seq++
	require.NoError(t, memory.NewShipmentRepository(f.ledger).Create(&entity.Shipment{
		ID:         fmt.Sprintf("ship-%d", f.seq),
		AirwayBill: fmt.Sprintf("AWB-%012d", f.seq),
		OrderID:    order.ID,
		Company:    order.Company,
		Product:    order.Product,
		Quantity:   order.Quantity,
		ShippedAt:  shippedAt,
	}))
}

func TestTotalesDeInventario(t *testing.T) {
	f := newFixture()
	f.addItem(t, "A", "Electronics", 10, "2.50")
	f.addItem(t, "B", "Furniture", 4, "100.00")
	uc := f.useCase()

	units, err := uc.TotalInventoryUnits()
	require.NoError(t, err)
	assert.Equal(t, int64(14), units)

	value, err := uc.TotalInventoryValue()
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("425.00")), "10×2.50 + 4×100.00")
}

func TestOrdersByStatus(t *testing.T) {
	f := newFixture()
	f.addOrder(t, "ACME", "A", 1, entity.StatusPending)
	f.addOrder(t, "ACME", "B", 1, entity.StatusPending)
	f.addOrder(t, "Globex", "C", 1, entity.StatusShipped)
	uc := f.useCase()

	counts, err := uc.OrdersByStatus(staffScope)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Pending": 2, "Shipped": 1}, counts)

	// El alcance de client acota el conteo a su empresa
	counts, err = uc.OrdersByStatus(dto.Scope{Role: entity.RoleClient, Company: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Shipped": 1}, counts)
}

func TestTopSellingProduct_SumaPorProducto(t *testing.T) {
	f := newFixture()
	f.addOrder(t, "ACME", "Laptop", 2, entity.StatusPending)
	f.addOrder(t, "ACME", "Mouse", 10, entity.StatusPending)
	f.addOrder(t, "ACME", "Laptop", 3, entity.StatusDelivered)
	uc := f.useCase()

	top, err := uc.TopSellingProduct(staffScope)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", top, "Mouse=10 contra Laptop=5")
}

// Empate de cantidades: gana el producto visto primero por orden de inserción.
func TestTopSellingProduct_EmpateGanaElPrimero(t *testing.T) {
	f := newFixture()
	f.addOrder(t, "ACME", "A", 2, entity.StatusPending)
	f.addOrder(t, "ACME", "B", 3, entity.StatusPending)
	f.addOrder(t, "ACME", "A", 1, entity.StatusPending)
	uc := f.useCase()

	top, err := uc.TopSellingProduct(staffScope)
	require.NoError(t, err)
	assert.Equal(t, "A", top, "A y B suman 3; A apareció primero")
}

func TestTopSellingProduct_SinOrdenes(t *testing.T) {
	uc := newFixture().useCase()

	top, err := uc.TopSellingProduct(staffScope)
	require.NoError(t, err)
	assert.Equal(t, "N/A", top)
}

func TestInventoryByCategory(t *testing.T) {
	f := newFixture()
	f.addItem(t, "A", "Electronics", 10, "1.00")
	f.addItem(t, "B", "Electronics", 5, "1.00")
	f.addItem(t, "C", "Furniture", 2, "1.00")
	uc := f.useCase()

	byCat, err := uc.InventoryByCategory()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Electronics": 15, "Furniture": 2}, byCat)
}

func TestShippedToday(t *testing.T) {
	f := newFixture()
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.Local)

	hoy := f.addOrder(t, "ACME", "A", 1, entity.StatusShipped)
	f.addShipment(t, hoy, now.Add(-2*time.Hour))

	ayer := f.addOrder(t, "ACME", "B", 1, entity.StatusShipped)
	f.addShipment(t, ayer, now.Add(-24*time.Hour))

	// Entregada hoy pero ya no está en Shipped: no cuenta
	entregada := f.addOrder(t, "ACME", "C", 1, entity.StatusDelivered)
	f.addShipment(t, entregada, now.Add(-time.Hour))

	uc := f.useCase(reporting.WithClock(func() time.Time { return now }))

	count, err := uc.ShippedToday(staffScope)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLowStockCount_UmbralPorDefecto(t *testing.T) {
	f := newFixture()
	f.addItem(t, "A", "X", 3, "1.00")
	f.addItem(t, "B", "X", 10, "1.00") // igual al umbral: no cuenta
	f.addItem(t, "C", "X", 25, "1.00")
	uc := f.useCase()

	count, err := uc.LowStockCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSummary_AgregadosCompletos(t *testing.T) {
	f := newFixture()
	f.addItem(t, "LAP-001", "Electronics", 5, "100.00")
	f.addOrder(t, "ACME", "LAP-001", 2, entity.StatusPending)
	f.addOrder(t, "Globex", "LAP-001", 1, entity.StatusProcessing)
	uc := f.useCase()

	report, err := uc.Summary(context.Background(), staffScope)
	require.NoError(t, err)

	assert.Equal(t, int64(5), report.TotalInventoryUnits)
	assert.True(t, report.TotalInventoryValue.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, map[string]int{"Pending": 1, "Processing": 1}, report.OrdersByStatus)
	assert.Equal(t, "LAP-001", report.TopSellingProduct)
	assert.Equal(t, 1, report.LowStockCount)
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 0, report.ShippedToday)
}

// fakeCache doble en memoria del contrato de caché.
type fakeCache struct {
	data map[string]string
	sets int
	gets int
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.sets++
	c.data[key] = string(value.([]byte))
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	return c.data[key], nil
}

func (c *fakeCache) GenerateKey(operation, key string) string {
	return "test:" + operation + ":" + key
}

func TestSummary_UsaCache(t *testing.T) {
	f := newFixture()
	f.addItem(t, "A", "X", 5, "1.00")
	fc := newFakeCache()
	uc := f.useCase(reporting.WithCache(fc, time.Minute))
	ctx := context.Background()

	first, err := uc.Summary(ctx, staffScope)
	require.NoError(t, err)
	assert.Equal(t, 1, fc.sets, "el primer cálculo llena el caché")

	// Mutamos el ledger: mientras el caché viva, el resumen no cambia
	f.addItem(t, "B", "X", 100, "1.00")

	second, err := uc.Summary(ctx, staffScope)
	require.NoError(t, err)
	assert.Equal(t, first.TotalInventoryUnits, second.TotalInventoryUnits, "respuesta servida desde caché")
	assert.Equal(t, 1, fc.sets, "el hit de caché no recalcula")
}

// Las entradas de caché son por alcance: staff y client no comparten resumen.
func TestSummary_CachePorAlcance(t *testing.T) {
	f := newFixture()
	f.addOrder(t, "ACME", "A", 1, entity.StatusPending)
	f.addOrder(t, "Globex", "B", 1, entity.StatusPending)
	fc := newFakeCache()
	uc := f.useCase(reporting.WithCache(fc, time.Minute))
	ctx := context.Background()

	all, err := uc.Summary(ctx, staffScope)
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalOrders)

	own, err := uc.Summary(ctx, dto.Scope{Role: entity.RoleClient, Company: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, 1, own.TotalOrders)
}
