package entity

import "github.com/shopspring/decimal"

// StockLevel vista derivada de un artículo con su stock calculado. Nunca se persiste.
type StockLevel struct {
	Item  Item
	Stock decimal.Decimal
	IsLow bool // 0 < stock < minStock
	IsOut bool // stock == 0
}

// StockCounts totales por estado.
type StockCounts struct {
	All int
	Low int
	Out int
}
