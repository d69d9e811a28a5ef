package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog          *inventory.CatalogService
	Ledger           *inventory.LedgerService
	Stock            *inventory.StockService
	RegisterMovement *inventory.RegisterMovementUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	Reports          *inventory.ReportService
	PDFReport        inventory.ReportRenderer
	XMLReport        inventory.ReportRenderer
	Metrics          http.Handler
	ServiceName      string
	Log              zerolog.Logger
	// JWTSecret vacío deja la API sin autenticación (uso local).
	JWTSecret string
}

// NewApp crea la app Fiber con recover y el manejador de errores común.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}
	api.Use(AuditMutations(deps.Log))

	// Catálogo
	itemHandler := NewItemHandler(deps.Catalog, deps.Stock)
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Put("/", itemHandler.Replace)
	items.Post("/reset", itemHandler.Reset)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Libro de movimientos
	movementHandler := NewMovementHandler(deps.Ledger, deps.Stock, deps.RegisterMovement)
	movements := api.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Put("/", movementHandler.Replace)
	movements.Post("/reset", movementHandler.Reset)

	// Vistas derivadas
	stockHandler := NewStockHandler(deps.Stock, deps.Replenishment, deps.Reports, deps.PDFReport, deps.XMLReport)
	api.Get("/stock", stockHandler.Stock)
	api.Get("/dashboard", stockHandler.Dashboard)
	api.Get("/replenishment", stockHandler.Replenishment)
	api.Get("/reports/stock.pdf", stockHandler.ReportPDF)
	api.Get("/reports/stock.xml", stockHandler.ReportXML)
}
