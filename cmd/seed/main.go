// seed puebla la base con datos de demostración: dos usuarios (staff y
// client), un catálogo de inventario y un lote de órdenes en estados variados.
//
// Uso: go run ./cmd/seed
// Reemplaza inventario y órdenes existentes (ReplaceAll); los usuarios
// duplicados se omiten.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockswift-api/internal/domain/entity"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockswift-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewInventoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	now := time.Now()

	for _, u := range demoUsers(now) {
		if err := userRepo.Create(u); err != nil {
			fmt.Printf("usuario %s omitido: %v\n", u.Email, err)
			continue
		}
		fmt.Printf("usuario %s (%s) creado\n", u.Email, u.Role)
	}

	items := demoItems(now)
	if err := itemRepo.ReplaceAll(items); err != nil {
		fail("cargar inventario: %v", err)
	}
	fmt.Printf("inventario: %d artículos\n", len(items))

	orders := demoOrders(now)
	if err := orderRepo.ReplaceAll(orders); err != nil {
		fail("cargar órdenes: %v", err)
	}
	fmt.Printf("órdenes: %d\n", len(orders))
}

func demoUsers(now time.Time) []*entity.User {
	return []*entity.User{
		newUser(now, "staff@stockswift.dev", "staff123", "Operaciones", "", entity.RoleStaff),
		newUser(now, "acme@stockswift.dev", "acme123", "ACME Corp", "ACME Corp", entity.RoleClient),
	}
}

func newUser(now time.Time, email, password, name, company, role string) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Company:      company,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func demoItems(now time.Time) []*entity.InventoryItem {
	rows := []struct {
		sku, name, category string
		quantity            int64
		unitCost            string
	}{
		{"LAP-001", "Laptop 14\"", "Electronics", 25, "899.99"},
		{"MON-002", "Monitor 27\"", "Electronics", 40, "249.50"},
		{"KEY-003", "Mechanical Keyboard", "Accessories", 8, "79.90"},
		{"MOU-004", "Wireless Mouse", "Accessories", 120, "24.99"},
		{"DES-005", "Standing Desk", "Furniture", 5, "399.00"},
		{"CHA-006", "Office Chair", "Furniture", 14, "189.00"},
	}
	items := make([]*entity.InventoryItem, 0, len(rows))
	for _, r := range rows {
		cost, err := decimal.NewFromString(r.unitCost)
		if err != nil {
			fail("unit cost de %s: %v", r.sku, err)
		}
		items = append(items, &entity.InventoryItem{
			ID:        uuid.New().String(),
			SKU:       r.sku,
			Name:      r.name,
			Category:  r.category,
			Quantity:  r.quantity,
			UnitCost:  cost,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}

func demoOrders(now time.Time) []*entity.Order {
	rows := []struct {
		company, customer, product string
		quantity                   int64
		status                     entity.OrderStatus
	}{
		{"ACME Corp", "J. Rivera", "LAP-001", 3, entity.StatusPending},
		{"ACME Corp", "J. Rivera", "MON-002", 6, entity.StatusProcessing},
		{"Globex", "M. Chen", "MOU-004", 20, entity.StatusPending},
		{"Globex", "M. Chen", "LAP-001", 2, entity.StatusDelivered},
		{"Initech", "P. Gibbons", "CHA-006", 4, entity.StatusProcessing},
	}
	orders := make([]*entity.Order, 0, len(rows))
	for i, r := range rows {
		created := now.Add(time.Duration(i) * time.Second)
		orders = append(orders, &entity.Order{
			ID:           uuid.New().String(),
			Company:      r.company,
			CustomerName: r.customer,
			Product:      r.product,
			Quantity:     r.quantity,
			Status:       r.status,
			Date:         created,
			CreatedAt:    created,
			UpdatedAt:    created,
		})
	}
	return orders
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
