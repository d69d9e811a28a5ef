package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/metrics"
	infrapdf "github.com/OnKodr-dev/inventory-app/internal/infrastructure/pdf"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/storage"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/system"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/xmlexport"
	httpRouter "github.com/OnKodr-dev/inventory-app/internal/interfaces/http"
	"github.com/OnKodr-dev/inventory-app/pkg/config"
	"github.com/OnKodr-dev/inventory-app/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	stockPolicy, err := invrules.ParseStockPolicy(cfg.Inventory.StockPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("INVENTORY_STOCK_POLICY")
	}
	bulkPolicy, err := inventory.ParseBulkSKUPolicy(cfg.Inventory.BulkSKUPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("INVENTORY_BULK_SKU_POLICY")
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén de instantáneas")
	}
	defer store.Close()

	m := metrics.New()
	snaps := snapshot.NewPersister(store, log.Component("snapshot"), cfg.Store.Timeout(), m)
	ids := system.UUIDGenerator{}
	clock := system.Clock{}

	ledger := inventory.NewLedgerService(snaps, ids, clock, log.Component("ledger"), m)
	catalog := inventory.NewCatalogService(ledger, snaps, ids, inventory.CatalogConfig{
		DefaultUnit:   cfg.Inventory.DefaultUnit,
		BulkSKUPolicy: bulkPolicy,
	}, log.Component("catalog"), m)
	fromLedger := ledger.Load(ctx)
	fromCatalog := catalog.Load(ctx)
	log.Info().
		Bool("catalog_snapshot", fromCatalog).
		Bool("ledger_snapshot", fromLedger).
		Int("items", len(catalog.Items())).
		Int("movements", len(ledger.Movements())).
		Msg("estado cargado")

	stock := inventory.NewStockService(catalog, ledger, stockPolicy, cfg.Inventory.RecentLimit)
	m.RegisterStockGauges(func() entity.StockCounts {
		_, counts := stock.Levels(invrules.FilterAll)
		return counts
	})

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventory API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:          catalog,
		Ledger:           ledger,
		Stock:            stock,
		RegisterMovement: inventory.NewRegisterMovementUseCase(catalog, ledger, stock),
		Replenishment:    inventory.NewReplenishmentUseCase(catalog, stock),
		Reports:          inventory.NewReportService(stock, clock),
		PDFReport:        infrapdf.NewStockReportGenerator(cfg.App.Name),
		XMLReport:        xmlexport.NewStockReportEncoder(),
		Metrics:          m.Handler(),
		ServiceName:      cfg.App.Name,
		Log:              log.Component("audit"),
		JWTSecret:        cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige token")
	}

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
