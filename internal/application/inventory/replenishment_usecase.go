package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// Suggestion sugerencia de reposición para un artículo bajo su stock mínimo.
type Suggestion struct {
	Item         entity.Item
	CurrentStock decimal.Decimal
	IdealStock   decimal.Decimal // MinStock * 1.5
	SuggestedQty decimal.Decimal // IdealStock - CurrentStock
	Priority     int             // 1 = más urgente
}

var idealFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición a partir del catálogo y del libro.
type ReplenishmentUseCase struct {
	catalog ItemSource
	stock   *StockService
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(catalog ItemSource, stock *StockService) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{catalog: catalog, stock: stock}
}

// Suggestions devuelve los artículos con stock < MinStock ordenados por déficit relativo.
// Los artículos con MinStock <= 0 nunca aparecen.
func (uc *ReplenishmentUseCase) Suggestions() []Suggestion {
	stock := uc.stock.StockByItemID()
	out := []Suggestion{}
	for _, it := range uc.catalog.Items() {
		if !it.MinStock.IsPositive() {
			continue
		}
		current := invrules.StockOf(stock, it.ID)
		if !current.LessThan(it.MinStock) {
			continue
		}
		ideal := it.MinStock.Mul(idealFactor)
		qty := ideal.Sub(current)
		if qty.IsNegative() {
			qty = decimal.Zero
		}
		out = append(out, Suggestion{Item: it, CurrentStock: current, IdealStock: ideal, SuggestedQty: qty})
	}

	// Mayor déficit relativo primero, luego mayor déficit absoluto, luego nombre.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		defA, defB := a.Item.MinStock.Sub(a.CurrentStock), b.Item.MinStock.Sub(b.CurrentStock)
		relA, relB := defA.Div(a.Item.MinStock), defB.Div(b.Item.MinStock)
		if !relA.Equal(relB) {
			return relA.GreaterThan(relB)
		}
		if !defA.Equal(defB) {
			return defA.GreaterThan(defB)
		}
		return a.Item.Name < b.Item.Name
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
