package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stockswift-api/internal/application/auth"
	"github.com/jhoicas/stockswift-api/internal/application/inventory"
	"github.com/jhoicas/stockswift-api/internal/application/orders"
	"github.com/jhoicas/stockswift-api/internal/application/reporting"
	"github.com/jhoicas/stockswift-api/internal/domain/repository"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stockswift-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockswift-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockswift-api/internal/interfaces/http"
	"github.com/jhoicas/stockswift-api/pkg/cache"
	"github.com/jhoicas/stockswift-api/pkg/config"
	"github.com/jhoicas/stockswift-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		itemRepo     repository.InventoryRepository
		orderRepo    repository.OrderRepository
		shipmentRepo repository.ShipmentRepository
		userRepo     repository.UserRepository
		invTx        inventory.TxRunner
		ordTx        orders.TxRunner
	)

	switch cfg.DB.Driver {
	case "memory":
		// Ledger en memoria: desarrollo local sin PostgreSQL.
		ledger := memory.NewLedger()
		itemRepo = memory.NewInventoryRepository(ledger)
		orderRepo = memory.NewOrderRepository(ledger)
		shipmentRepo = memory.NewShipmentRepository(ledger)
		userRepo = memory.NewUserRepository(ledger)
		runner := memory.NewTxRunner(ledger)
		invTx, ordTx = runner, runner
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		itemRepo = postgres.NewInventoryRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
		shipmentRepo = postgres.NewShipmentRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		runner := postgres.NewTxRunner(pool)
		invTx, ordTx = runner, runner
	}

	inventoryUC := inventory.NewUseCase(invTx, itemRepo, cfg.Inventory.LowStockThreshold)
	ordersUC := orders.NewUseCase(
		ordTx, orderRepo, shipmentRepo, itemRepo,
		orders.WithPDFGenerator(infrapdf.NewMarotoAirwayBillGenerator()),
	)

	reportingOpts := []reporting.Option{}
	if cfg.Redis.Addr != "" {
		reportCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.App.Name)
		ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		reportingOpts = append(reportingOpts, reporting.WithCache(reportCache, ttl))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("caché de reportes habilitado")
	}
	reportingUC := reporting.NewUseCase(
		itemRepo, orderRepo, shipmentRepo,
		cfg.Inventory.LowStockThreshold,
		reportingOpts...,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockSwift API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		OrdersUC:    ordersUC,
		ReportingUC: reportingUC,
		AuthUC:      authUC,
		Metrics:     httpRouter.NewMetricsCollector(),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
