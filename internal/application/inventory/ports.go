package inventory

import (
	"context"
	"time"

	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// IDGenerator genera identificadores opacos únicos durante la vida del proceso.
type IDGenerator interface {
	NewID() string
}

// Clock devuelve el instante actual; se usa tal cual como CreatedAt.
type Clock interface {
	Now() time.Time
}

// CatalogSnapshots persistencia de mejor esfuerzo del catálogo.
type CatalogSnapshots interface {
	LoadCatalog(ctx context.Context) snapshot.Decoded[[]invrules.ItemEntry]
	SaveCatalog(ctx context.Context, items []entity.Item)
	ClearCatalog(ctx context.Context)
}

// LedgerSnapshots persistencia de mejor esfuerzo del libro de movimientos.
type LedgerSnapshots interface {
	LoadLedger(ctx context.Context) snapshot.Decoded[[]entity.Movement]
	SaveLedger(ctx context.Context, movements []entity.Movement)
	ClearLedger(ctx context.Context)
}

// MovementIndex consulta del libro usada por la guarda de borrado del catálogo.
type MovementIndex interface {
	HasMovements(itemID string) bool
}

// ItemSource lectura del catálogo.
type ItemSource interface {
	Items() []entity.Item
}

// MovementSource lectura del libro.
type MovementSource interface {
	Movements() []entity.Movement
}

// MutationObserver recibe el resultado de cada mutación (métricas). err nil = éxito.
type MutationObserver interface {
	MutationDone(op string, err error)
}

type nopObserver struct{}

func (nopObserver) MutationDone(string, error) {}
