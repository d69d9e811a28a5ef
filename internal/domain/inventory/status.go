package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// StockFilter filtro de listados por estado de stock.
type StockFilter string

const (
	FilterAll StockFilter = "ALL"
	FilterLow StockFilter = "LOW"
	FilterOut StockFilter = "OUT"
)

// ParseStockFilter interpreta el filtro; vacío equivale a FilterAll.
func ParseStockFilter(s string) (StockFilter, error) {
	switch f := StockFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterLow, FilterOut:
		return f, nil
	}
	return "", fmt.Errorf("filtro desconocido: %q", s)
}

// Level construye la vista de stock de un artículo.
// Bajo: 0 < stock < minStock. Agotado: stock == 0. Un stock negativo no es ninguno de los dos.
func Level(item entity.Item, stock decimal.Decimal) entity.StockLevel {
	return entity.StockLevel{
		Item:  item,
		Stock: stock,
		IsLow: stock.IsPositive() && stock.LessThan(item.MinStock),
		IsOut: stock.IsZero(),
	}
}

// Levels enriquece el catálogo (en su orden) con el stock derivado, aplica el filtro y
// devuelve los totales calculados sobre el catálogo completo.
func Levels(items []entity.Item, stock map[string]decimal.Decimal, filter StockFilter) ([]entity.StockLevel, entity.StockCounts) {
	var counts entity.StockCounts
	out := make([]entity.StockLevel, 0, len(items))
	for _, it := range items {
		lvl := Level(it, StockOf(stock, it.ID))
		counts.All++
		if lvl.IsLow {
			counts.Low++
		}
		if lvl.IsOut {
			counts.Out++
		}
		switch filter {
		case FilterLow:
			if !lvl.IsLow {
				continue
			}
		case FilterOut:
			if !lvl.IsOut {
				continue
			}
		}
		out = append(out, lvl)
	}
	return out, counts
}

// Etiquetas de estado para reportes y exportaciones.
const (
	StatusOK       = "OK"
	StatusLow      = "LOW"
	StatusOut      = "OUT"
	StatusNegative = "NEGATIVE"
)

// StatusOf etiqueta de un nivel de stock.
func StatusOf(l entity.StockLevel) string {
	switch {
	case l.IsOut:
		return StatusOut
	case l.IsLow:
		return StatusLow
	case l.Stock.IsNegative():
		return StatusNegative
	default:
		return StatusOK
	}
}
