package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockswift-api/internal/application/auth"
	"github.com/jhoicas/stockswift-api/internal/application/inventory"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
	"github.com/jhoicas/stockswift-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	OrdersUC    *orders.UseCase
	ReportingUC *reporting.UseCase
	AuthUC      *auth.AuthUseCase
	Metrics     *MetricsCollector
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Autorización: el inventario y las transiciones de estado son de staff; las
// órdenes, despachos, reportes y exportaciones admiten ambos roles y los
// motores acotan lo visible con el Scope del token.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staffOnly := RequireRole(entity.RoleStaff)

	// Inventory (protegido; mutaciones e importación solo staff)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Post("/", staffOnly, inventoryHandler.Add)
	invGroup.Post("/import", staffOnly, inventoryHandler.Import)
	invGroup.Post("/:id/adjust", staffOnly, inventoryHandler.Adjust)
	invGroup.Patch("/:id/cost", staffOnly, inventoryHandler.UpdateCost)
	invGroup.Delete("/:id", staffOnly, inventoryHandler.Remove)

	// Orders (protegido; transición de estado solo staff)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC)
	shipmentHandler := NewShipmentHandler(deps.OrdersUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.Get)
	ordersGroup.Patch("/:id/status", staffOnly, orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/cost", orderHandler.Cost)
	ordersGroup.Get("/:id/shipment", shipmentHandler.GetByOrder)
	ordersGroup.Get("/:id/airway-bill", shipmentHandler.AirwayBillText)
	ordersGroup.Get("/:id/airway-bill.pdf", shipmentHandler.AirwayBillPDF)

	// Shipments (protegido)
	shipmentsGroup := protected.Group("/shipments")
	shipmentsGroup.Get("/", shipmentHandler.List)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/orders-by-status", reportHandler.OrdersByStatus)
	reportsGroup.Get("/top-product", reportHandler.TopSellingProduct)
	reportsGroup.Get("/inventory-by-category", reportHandler.InventoryByCategory)
	reportsGroup.Get("/shipped-today", reportHandler.ShippedToday)

	// Exports (protegido)
	exportsGroup := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.InventoryUC, deps.OrdersUC, deps.ReportingUC)
	exportsGroup.Get("/inventory.csv", staffOnly, exportHandler.InventoryCSV)
	exportsGroup.Get("/orders.csv", exportHandler.OrdersCSV)
	exportsGroup.Get("/report.csv", exportHandler.ReportCSV)
}
