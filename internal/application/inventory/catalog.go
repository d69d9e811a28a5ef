package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/domain/seed"
)

// BulkSKUPolicy qué hacer con SKU repetidos al reemplazar el catálogo en bloque.
type BulkSKUPolicy string

const (
	BulkSKUPermissive BulkSKUPolicy = "permissive" // se aceptan tal cual
	BulkSKUDedupe     BulkSKUPolicy = "dedupe"     // gana la primera aparición
	BulkSKUReject     BulkSKUPolicy = "reject"     // ErrDuplicateSKU, catálogo sin cambios
)

// ParseBulkSKUPolicy interpreta la política configurada; vacío equivale a permissive.
func ParseBulkSKUPolicy(s string) (BulkSKUPolicy, error) {
	switch p := BulkSKUPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return BulkSKUPermissive, nil
	case BulkSKUPermissive, BulkSKUDedupe, BulkSKUReject:
		return p, nil
	}
	return "", fmt.Errorf("política de SKU en bloque desconocida: %q", s)
}

// CatalogConfig opciones del catálogo.
type CatalogConfig struct {
	DefaultUnit   string
	BulkSKUPolicy BulkSKUPolicy
}

// CatalogService único dueño del catálogo de artículos. Mantiene la unicidad de SKU e
// impide borrar artículos con historial en el libro.
type CatalogService struct {
	mu     sync.Mutex
	items  []entity.Item // más reciente primero
	ledger MovementIndex
	snaps  CatalogSnapshots
	ids    IDGenerator
	cfg    CatalogConfig
	log    zerolog.Logger
	obs    MutationObserver
}

// NewCatalogService construye el servicio con el catálogo semilla. obs puede ser nil.
func NewCatalogService(
	ledger MovementIndex,
	snaps CatalogSnapshots,
	ids IDGenerator,
	cfg CatalogConfig,
	log zerolog.Logger,
	obs MutationObserver,
) *CatalogService {
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = "ks"
	}
	if cfg.BulkSKUPolicy == "" {
		cfg.BulkSKUPolicy = BulkSKUPermissive
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &CatalogService{
		items:  seed.Items(),
		ledger: ledger,
		snaps:  snaps,
		ids:    ids,
		cfg:    cfg,
		log:    log,
		obs:    obs,
	}
}

// Load reemplaza el estado con la instantánea guardada, o con la semilla si no hay una
// válida. Devuelve true si se usó la instantánea.
func (s *CatalogService) Load(ctx context.Context) bool {
	d := s.snaps.LoadCatalog(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.UseDefault {
		s.items = seed.Items()
		return false
	}
	s.items = s.normalizeEntries(d.Data)
	return true
}

// Items devuelve una copia del catálogo (más reciente primero).
func (s *CatalogService) Items() []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item busca un artículo por ID.
func (s *CatalogService) Item(id string) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return entity.Item{}, false
}

// AddItem normaliza, valida y antepone un artículo nuevo.
// Errores: ErrEmptyField (nombre o SKU vacíos), ErrDuplicateSKU.
func (s *CatalogService) AddItem(ctx context.Context, in invrules.ItemInput) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := invrules.NormalizeItem(in, s.cfg.DefaultUnit)
	if !invrules.HasRequiredFields(item) {
		return s.reject("add_item", domain.ErrEmptyField)
	}
	if s.skuTaken(item.SKU, "") {
		return s.reject("add_item", domain.ErrDuplicateSKU)
	}
	item.ID = s.ids.NewID()
	s.items = append([]entity.Item{item}, s.items...)
	s.commit(ctx, "add_item")
	s.log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Msg("artículo creado")
	return item, nil
}

// UpdateItem fusiona el parche sobre el artículo. Si el ID no existe no hace nada y
// devuelve found=false. Un SKU que choca con otro artículo devuelve ErrDuplicateSKU.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, patch invrules.ItemPatch) (item entity.Item, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return entity.Item{}, false, nil
	}
	next := invrules.ApplyPatch(s.items[i], patch)
	if s.skuTaken(next.SKU, id) {
		_, err := s.reject("update_item", domain.ErrDuplicateSKU)
		return entity.Item{}, true, err
	}
	s.items[i] = next
	s.commit(ctx, "update_item")
	return next, true, nil
}

// DeleteItem borra el artículo salvo que algún movimiento lo referencie
// (ErrItemHasMovements). removed=false si el ID no existía.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.HasMovements(id) {
		_, err := s.reject("delete_item", domain.ErrItemHasMovements)
		return false, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.commit(ctx, "delete_item")
	s.log.Info().Str("item_id", id).Msg("artículo eliminado")
	return true, nil
}

// ResetCatalog vuelve a la semilla y borra la instantánea guardada.
func (s *CatalogService) ResetCatalog(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = seed.Items()
	s.snaps.ClearCatalog(ctx)
	s.obs.MutationDone("reset_catalog", nil)
}

// ReplaceCatalog sobrescribe el catálogo. Cada entrada pasa por la misma normalización que
// AddItem y se descartan las que quedan sin nombre o SKU. Los SKU repetidos se tratan según
// CatalogConfig.BulkSKUPolicy.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, entries []invrules.ItemEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.normalizeEntries(entries)
	switch s.cfg.BulkSKUPolicy {
	case BulkSKUDedupe:
		items = dedupeSKU(items)
	case BulkSKUReject:
		if len(dedupeSKU(items)) != len(items) {
			_, err := s.reject("replace_catalog", domain.ErrDuplicateSKU)
			return err
		}
	}
	s.items = items
	s.commit(ctx, "replace_catalog")
	return nil
}

// normalizeEntries normaliza en bloque. Un ID vacío o repetido recibe uno nuevo.
func (s *CatalogService) normalizeEntries(entries []invrules.ItemEntry) []entity.Item {
	items := make([]entity.Item, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		item := invrules.NormalizeItem(e.ItemInput, s.cfg.DefaultUnit)
		if !invrules.HasRequiredFields(item) {
			continue
		}
		item.ID = strings.TrimSpace(e.ID)
		if _, dup := seen[item.ID]; item.ID == "" || dup {
			if dup {
				s.log.Warn().Str("item_id", item.ID).Str("sku", item.SKU).Msg("ID repetido en bloque, se asigna uno nuevo")
			}
			item.ID = s.freshID(seen)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}

func (s *CatalogService) freshID(taken map[string]struct{}) string {
	for {
		id := s.ids.NewID()
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

func dedupeSKU(items []entity.Item) []entity.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		k := invrules.SKUKey(it.SKU)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

func (s *CatalogService) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// skuTaken indica si otro artículo (distinto de exceptID) ya usa el SKU.
func (s *CatalogService) skuTaken(sku, exceptID string) bool {
	k := invrules.SKUKey(sku)
	for _, it := range s.items {
		if it.ID != exceptID && invrules.SKUKey(it.SKU) == k {
			return true
		}
	}
	return false
}

func (s *CatalogService) commit(ctx context.Context, op string) {
	s.snaps.SaveCatalog(ctx, s.items)
	s.obs.MutationDone(op, nil)
}

func (s *CatalogService) reject(op string, err error) (entity.Item, error) {
	s.log.Debug().Str("op", op).Str("code", domain.Code(err)).Msg("operación de catálogo rechazada")
	s.obs.MutationDone(op, err)
	return entity.Item{}, err
}
