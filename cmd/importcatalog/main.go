// importcatalog carga un catálogo de artículos desde XML (<items><item .../></items> o un
// <stockReport> exportado) y lo guarda como instantánea en el almacén configurado.
//
// Uso: go run ./cmd/importcatalog [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual. Acepta UTF-8 e ISO-8859-1.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/storage"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/system"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/xmlexport"
	"github.com/OnKodr-dev/inventory-app/pkg/config"
	"github.com/OnKodr-dev/inventory-app/pkg/logger"
)

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer XML: %v\n", err)
		os.Exit(1)
	}
	entries, err := xmlexport.DecodeCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.DriverMemory {
		fmt.Fprintln(os.Stderr, "STORE_DRIVER=memory no persiste; use file, sqlite, postgres o redis")
		os.Exit(1)
	}
	bulkPolicy, err := inventory.ParseBulkSKUPolicy(cfg.Inventory.BulkSKUPolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVENTORY_BULK_SKU_POLICY: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "importcatalog"})
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snaps := snapshot.NewPersister(store, log.Component("snapshot"), cfg.Store.Timeout(), nil)
	ids := system.UUIDGenerator{}
	ledger := inventory.NewLedgerService(snaps, ids, system.Clock{}, zerolog.Nop(), nil)
	ledger.Load(ctx)
	catalog := inventory.NewCatalogService(ledger, snaps, ids, inventory.CatalogConfig{
		DefaultUnit:   cfg.Inventory.DefaultUnit,
		BulkSKUPolicy: bulkPolicy,
	}, log.Component("catalog"), nil)

	if err := catalog.ReplaceCatalog(ctx, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Reemplazar catálogo: %v\n", err)
		os.Exit(1)
	}

	kept := len(catalog.Items())
	fmt.Printf("Importado %s en %s: %d artículos (%d descartados)\n",
		xmlPath, cfg.Store.Driver, kept, len(entries)-kept)
}
