package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del catálogo.
// El stock no se guarda aquí: se deriva siempre de los movimientos.
type Item struct {
	ID       string
	Name     string
	SKU      string // único en el catálogo, comparado sin distinguir mayúsculas
	Unit     string
	MinStock decimal.Decimal // umbral de reposición
}
