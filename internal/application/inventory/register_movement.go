package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// RegisterMovementUseCase aplica las reglas del llamador (las del formulario de movimientos)
// antes de escribir en el libro: artículo existente, tipo válido, cantidad positiva para
// IN/OUT, ajuste distinto de cero y OUT sin superar el stock actual.
type RegisterMovementUseCase struct {
	mu      sync.Mutex // serializa la lectura del stock y la escritura del movimiento
	catalog *CatalogService
	ledger  *LedgerService
	stock   *StockService
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(catalog *CatalogService, ledger *LedgerService, stock *StockService) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{catalog: catalog, ledger: ledger, stock: stock}
}

// RegisterMovementInput entrada del caso de uso.
type RegisterMovementInput struct {
	ItemID string
	Type   string
	Qty    decimal.Decimal
	Note   string
}

// RegisterMovement valida y registra. Errores: ErrEmptyField, ErrNotFound, ErrInvalidInput,
// ErrInsufficientStock.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in RegisterMovementInput) (entity.Movement, error) {
	itemID := strings.TrimSpace(in.ItemID)
	if itemID == "" {
		return entity.Movement{}, domain.ErrEmptyField
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.catalog.Item(itemID); !ok {
		return entity.Movement{}, domain.ErrNotFound
	}
	typ := entity.MovementType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if err := invrules.CheckMovement(typ, in.Qty, uc.stock.CurrentStock(itemID)); err != nil {
		return entity.Movement{}, err
	}
	return uc.ledger.AddMovement(ctx, MovementInput{
		ItemID: itemID,
		Type:   typ,
		Qty:    in.Qty,
		Note:   in.Note,
	})
}
