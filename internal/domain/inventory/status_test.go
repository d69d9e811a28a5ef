package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	"github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

func TestLevel_EstadosDelGlosario(t *testing.T) {
	item := entity.Item{ID: "i1", MinStock: dec("5")}

	low := inventory.Level(item, dec("3"))
	assert.True(t, low.IsLow)
	assert.False(t, low.IsOut)

	out := inventory.Level(item, decimal.Zero)
	assert.False(t, out.IsLow, "cero es agotado, no bajo")
	assert.True(t, out.IsOut)

	neg := inventory.Level(item, dec("-2"))
	assert.False(t, neg.IsLow)
	assert.False(t, neg.IsOut)

	ok := inventory.Level(item, dec("5"))
	assert.False(t, ok.IsLow)
}

func TestLevels_FiltroYTotales(t *testing.T) {
	items := []entity.Item{
		{ID: "i1", Name: "A", MinStock: dec("10")},
		{ID: "i2", Name: "B", MinStock: dec("5")},
		{ID: "i3", Name: "C", MinStock: dec("1")},
	}
	stock := map[string]decimal.Decimal{"i1": dec("22"), "i2": dec("3")}

	all, counts := inventory.Levels(items, stock, inventory.FilterAll)
	require.Len(t, all, 3)
	assert.Equal(t, "i1", all[0].Item.ID, "conserva el orden del catálogo")
	assert.Equal(t, entity.StockCounts{All: 3, Low: 1, Out: 1}, counts)

	lowOnly, counts2 := inventory.Levels(items, stock, inventory.FilterLow)
	require.Len(t, lowOnly, 1)
	assert.Equal(t, "i2", lowOnly[0].Item.ID)
	assert.Equal(t, counts, counts2, "los totales no dependen del filtro")

	outOnly, _ := inventory.Levels(items, stock, inventory.FilterOut)
	require.Len(t, outOnly, 1)
	assert.Equal(t, "i3", outOnly[0].Item.ID)
}

func TestParseStockFilter(t *testing.T) {
	f, err := inventory.ParseStockFilter("low")
	require.NoError(t, err)
	assert.Equal(t, inventory.FilterLow, f)

	f, err = inventory.ParseStockFilter("")
	require.NoError(t, err)
	assert.Equal(t, inventory.FilterAll, f)

	_, err = inventory.ParseStockFilter("expired")
	assert.Error(t, err)
}

func TestStatusOf(t *testing.T) {
	item := entity.Item{MinStock: decimal.NewFromInt(5)}
	assert.Equal(t, inventory.StatusOut, inventory.StatusOf(inventory.Level(item, decimal.Zero)))
	assert.Equal(t, inventory.StatusLow, inventory.StatusOf(inventory.Level(item, decimal.NewFromInt(2))))
	assert.Equal(t, inventory.StatusNegative, inventory.StatusOf(inventory.Level(item, decimal.NewFromInt(-2))))
	assert.Equal(t, inventory.StatusOK, inventory.StatusOf(inventory.Level(item, decimal.NewFromInt(9))))
}
