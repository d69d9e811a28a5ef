package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los rechazos de validación dejan el estado en memoria sin cambios.
var (
	ErrEmptyField        = errors.New("campo obligatorio vacío")
	ErrDuplicateSKU      = errors.New("el SKU ya existe")
	ErrItemHasMovements  = errors.New("el artículo tiene movimientos registrados")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Códigos estables expuestos a los clientes.
const (
	CodeEmptyField        = "EMPTY_FIELD"
	CodeDuplicateSKU      = "DUPLICATE_SKU"
	CodeItemHasMovements  = "ITEM_HAS_MOVEMENTS"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInternal          = "INTERNAL"
)

// Code devuelve el código estable de un error de dominio; CodeInternal si no es uno conocido.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEmptyField):
		return CodeEmptyField
	case errors.Is(err, ErrDuplicateSKU):
		return CodeDuplicateSKU
	case errors.Is(err, ErrItemHasMovements):
		return CodeItemHasMovements
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	default:
		return CodeInternal
	}
}

// IsRejection indica si el error es un rechazo de validación (no un fallo interno).
func IsRejection(err error) bool {
	return err != nil && Code(err) != CodeInternal
}
