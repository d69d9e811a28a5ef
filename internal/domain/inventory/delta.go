package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// Delta devuelve el efecto con signo de un movimiento sobre el stock.
//
//	IN     -> +|qty|
//	OUT    -> -|qty|
//	ADJUST -> qty tal cual (único tipo que admite signo negativo)
//
// Un tipo desconocido o vacío aporta 0. Nunca falla.
func Delta(m entity.Movement) decimal.Decimal {
	switch m.Type {
	case entity.MovementTypeIn:
		return m.Qty.Abs()
	case entity.MovementTypeOut:
		return m.Qty.Abs().Neg()
	case entity.MovementTypeAdjust:
		return m.Qty
	default:
		return decimal.Zero
	}
}
