package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// CheckMovement reglas de negocio que aplica el llamador antes de registrar un movimiento
// (formularios, API HTTP). El libro de movimientos no las aplica: quien use el libro
// directamente puede dejar el stock en negativo.
func CheckMovement(t entity.MovementType, qty, currentStock decimal.Decimal) error {
	switch t {
	case entity.MovementTypeIn:
		if !qty.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeOut:
		if !qty.IsPositive() {
			return domain.ErrInvalidInput
		}
		if qty.GreaterThan(currentStock) {
			return domain.ErrInsufficientStock
		}
	case entity.MovementTypeAdjust:
		if qty.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
