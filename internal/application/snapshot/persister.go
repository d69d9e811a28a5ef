package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
)

// Observer recibe los fallos que el Persister absorbe (métricas).
type Observer interface {
	SnapshotWriteFailed(key, op string)
	SnapshotFallback(key string)
}

type nopObserver struct{}

func (nopObserver) SnapshotWriteFailed(string, string) {}
func (nopObserver) SnapshotFallback(string)            {}

// Persister adaptador de persistencia de mejor esfuerzo sobre un SnapshotStore.
// Las lecturas devuelven UseDefault ante cualquier fallo; las escrituras se intentan una
// vez, de forma síncrona, y sus errores se registran y se descartan.
type Persister struct {
	store   repository.SnapshotStore
	log     zerolog.Logger
	timeout time.Duration
	obs     Observer
}

// NewPersister construye el adaptador. obs puede ser nil.
func NewPersister(store repository.SnapshotStore, log zerolog.Logger, timeout time.Duration, obs Observer) *Persister {
	if obs == nil {
		obs = nopObserver{}
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Persister{store: store, log: log, timeout: timeout, obs: obs}
}

// LoadCatalog lee la instantánea del catálogo.
func (p *Persister) LoadCatalog(ctx context.Context) Decoded[[]invrules.ItemEntry] {
	raw, ok := p.load(ctx, CatalogKey)
	if !ok {
		return useDefault[[]invrules.ItemEntry]()
	}
	d := DecodeCatalog(raw)
	if d.UseDefault {
		p.fallback(CatalogKey, "instantánea del catálogo ilegible")
	}
	return d
}

// LoadLedger lee la instantánea del libro de movimientos.
func (p *Persister) LoadLedger(ctx context.Context) Decoded[[]entity.Movement] {
	raw, ok := p.load(ctx, LedgerKey)
	if !ok {
		return useDefault[[]entity.Movement]()
	}
	d := DecodeLedger(raw)
	if d.UseDefault {
		p.fallback(LedgerKey, "instantánea del libro ilegible")
	}
	return d
}

// SaveCatalog guarda el catálogo; nunca devuelve error.
func (p *Persister) SaveCatalog(ctx context.Context, items []entity.Item) {
	raw, err := EncodeCatalog(items)
	if err != nil {
		p.writeFailed(CatalogKey, "encode", err)
		return
	}
	p.save(ctx, CatalogKey, raw)
}

// SaveLedger guarda el libro de movimientos; nunca devuelve error.
func (p *Persister) SaveLedger(ctx context.Context, movements []entity.Movement) {
	raw, err := EncodeLedger(movements)
	if err != nil {
		p.writeFailed(LedgerKey, "encode", err)
		return
	}
	p.save(ctx, LedgerKey, raw)
}

// ClearCatalog borra la instantánea del catálogo.
func (p *Persister) ClearCatalog(ctx context.Context) { p.clear(ctx, CatalogKey) }

// ClearLedger borra la instantánea del libro.
func (p *Persister) ClearLedger(ctx context.Context) { p.clear(ctx, LedgerKey) }

func (p *Persister) load(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	raw, err := p.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			p.log.Debug().Str("key", key).Msg("sin instantánea, se usa la semilla")
			return nil, false
		}
		p.fallback(key, err.Error())
		return nil, false
	}
	return raw, true
}

func (p *Persister) save(ctx context.Context, key string, raw []byte) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.store.Save(ctx, key, raw); err != nil {
		p.writeFailed(key, "save", err)
	}
}

func (p *Persister) clear(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.store.Delete(ctx, key); err != nil {
		p.writeFailed(key, "delete", err)
	}
}

func (p *Persister) writeFailed(key, op string, err error) {
	p.log.Warn().Err(err).Str("key", key).Str("op", op).Msg("escritura de instantánea descartada")
	p.obs.SnapshotWriteFailed(key, op)
}

func (p *Persister) fallback(key, reason string) {
	p.log.Warn().Str("key", key).Str("reason", reason).Msg("instantánea inválida, se usa la semilla")
	p.obs.SnapshotFallback(key)
}
