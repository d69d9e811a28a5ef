package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New()

	m.MutationDone("add_item", nil)
	m.MutationDone("add_item", domain.ErrDuplicateSKU)
	m.MutationDone("add_item", domain.ErrDuplicateSKU)
	m.MutationDone("add_item", errors.New("otro"))
	m.SnapshotWriteFailed("inventory.items.v1", "save")
	m.SnapshotFallback("inventory.movements.v1")

	assert.Equal(t, 3, testutil.CollectAndCount(m.Registry(), "inventory_mutations_total"), "ok, DUPLICATE_SKU e INTERNAL")
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "inventory_snapshot_write_failures_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "inventory_snapshot_fallbacks_total"))
}

func TestMetrics_HandlerExponeGauges(t *testing.T) {
	m := metrics.New()
	m.RegisterStockGauges(func() entity.StockCounts { return entity.StockCounts{All: 3, Low: 2, Out: 0} })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `inventory_items{status="low"} 2`)
	assert.Contains(t, string(body), `inventory_items{status="all"} 3`)
}
