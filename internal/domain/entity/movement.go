package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de inventario.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     MovementType = "IN"     // entrada
	MovementTypeOut    MovementType = "OUT"    // salida
	MovementTypeAdjust MovementType = "ADJUST" // ajuste manual, puede ser negativo
)

// Valid indica si el tipo pertenece a la enumeración cerrada.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}

// Movement es un registro inmutable del libro de movimientos.
// ItemID puede no existir en el catálogo; se muestra como artículo desconocido.
type Movement struct {
	ID        string
	ItemID    string
	Type      MovementType
	Qty       decimal.Decimal
	Note      string
	CreatedAt time.Time
}
