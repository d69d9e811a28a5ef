package inventory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/application/snapshot"
	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/memory"
)

// seqIDs genera n1, n2, ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("n%d", g.n)
}

// fixedClock devuelve siempre el mismo instante, o avanza un minuto por llamada si step.
type fixedClock struct {
	mu   sync.Mutex
	now  time.Time
	step bool
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	if c.step {
		c.now = c.now.Add(time.Minute)
	}
	return t
}

var t0 = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

type mutationLog struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (m *mutationLog) MutationDone(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, op)
	m.errs = append(m.errs, err)
}

type harness struct {
	store   repository.SnapshotStore
	snaps   *snapshot.Persister
	ledger  *inventory.LedgerService
	catalog *inventory.CatalogService
	stock   *inventory.StockService
	obs     *mutationLog
}

type harnessOpts struct {
	store      repository.SnapshotStore
	bulkPolicy inventory.BulkSKUPolicy
}

// newHarness arma los servicios como en cmd/api pero con dependencias deterministas.
func newHarness(t *testing.T, opts harnessOpts) *harness {
	t.Helper()
	if opts.store == nil {
		opts.store = memory.NewSnapshotStore()
	}
	h := &harness{store: opts.store, obs: &mutationLog{}}
	h.snaps = snapshot.NewPersister(opts.store, zerolog.Nop(), time.Second, nil)
	ids := &seqIDs{}
	h.ledger = inventory.NewLedgerService(h.snaps, ids, &fixedClock{now: t0, step: true}, zerolog.Nop(), h.obs)
	h.catalog = inventory.NewCatalogService(h.ledger, h.snaps, ids,
		inventory.CatalogConfig{BulkSKUPolicy: opts.bulkPolicy}, zerolog.Nop(), h.obs)
	h.stock = inventory.NewStockService(h.catalog, h.ledger, "", 0)
	h.ledger.Load(context.Background())
	h.catalog.Load(context.Background())
	return h
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "se esperaba %s, se obtuvo %s", want, got)
}
