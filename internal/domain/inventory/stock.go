package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// StockPolicy política de cálculo del stock.
type StockPolicy string

const (
	// PolicyAllowNegative suma simple de deltas; el stock puede quedar negativo.
	PolicyAllowNegative StockPolicy = "allow_negative"
	// PolicyClampToZero el acumulado nunca baja de cero. Depende del orden:
	// los movimientos se recorren por CreatedAt ascendente.
	PolicyClampToZero StockPolicy = "clamp_zero"
)

// ParseStockPolicy interpreta la política configurada. Vacío equivale a PolicyAllowNegative.
func ParseStockPolicy(s string) (StockPolicy, error) {
	switch StockPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAllowNegative:
		return PolicyAllowNegative, nil
	case PolicyClampToZero:
		return PolicyClampToZero, nil
	}
	return "", fmt.Errorf("política de stock desconocida: %q", s)
}

// ComputeStockByItemID pliega el libro completo en un mapa itemID -> stock neto.
// Los movimientos sin itemID se ignoran. Un artículo sin movimientos no aparece en el
// mapa; usar StockOf para leerlo como cero. Es una función pura: recalcular desde cero
// siempre es válido y es la fuente de verdad.
func ComputeStockByItemID(movements []entity.Movement, policy StockPolicy) map[string]decimal.Decimal {
	stock := make(map[string]decimal.Decimal)
	if policy == PolicyClampToZero {
		for _, m := range chronological(movements) {
			if !hasItemID(m) {
				continue
			}
			next := stock[m.ItemID].Add(Delta(m))
			if next.IsNegative() {
				next = decimal.Zero
			}
			stock[m.ItemID] = next
		}
		return stock
	}
	for _, m := range movements {
		if !hasItemID(m) {
			continue
		}
		stock[m.ItemID] = stock[m.ItemID].Add(Delta(m))
	}
	return stock
}

// StockOf lee el stock de un artículo; ausencia equivale a cero.
func StockOf(stock map[string]decimal.Decimal, itemID string) decimal.Decimal {
	if v, ok := stock[itemID]; ok {
		return v
	}
	return decimal.Zero
}

func hasItemID(m entity.Movement) bool {
	return strings.TrimSpace(m.ItemID) != ""
}

// chronological devuelve una copia ordenada por CreatedAt ascendente (estable).
func chronological(movements []entity.Movement) []entity.Movement {
	sorted := make([]entity.Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
