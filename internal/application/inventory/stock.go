package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// Texto mostrado para movimientos cuyo artículo ya no está en el catálogo.
const (
	UnknownItemName = "Unknown item"
	UnknownItemSKU  = "-"
)

// MovementView movimiento enriquecido con los datos visibles del artículo.
type MovementView struct {
	Movement  entity.Movement
	ItemName  string
	ItemSKU   string
	ItemUnit  string
	KnownItem bool
}

// Dashboard resumen: stock bajo, agotados y últimos movimientos.
type Dashboard struct {
	Counts     entity.StockCounts
	LowStock   []entity.StockLevel
	OutOfStock []entity.StockLevel
	Recent     []MovementView
}

// StockService vistas derivadas. Recalcula desde el libro en cada lectura; no guarda caché.
type StockService struct {
	catalog     ItemSource
	ledger      MovementSource
	policy      invrules.StockPolicy
	recentLimit int
}

// NewStockService construye el servicio de vistas de stock.
func NewStockService(catalog ItemSource, ledger MovementSource, policy invrules.StockPolicy, recentLimit int) *StockService {
	if policy == "" {
		policy = invrules.PolicyAllowNegative
	}
	if recentLimit <= 0 {
		recentLimit = 8
	}
	return &StockService{catalog: catalog, ledger: ledger, policy: policy, recentLimit: recentLimit}
}

// Policy política de stock activa.
func (s *StockService) Policy() invrules.StockPolicy { return s.policy }

// StockByItemID mapa itemID -> stock neto (artículos sin movimientos ausentes).
func (s *StockService) StockByItemID() map[string]decimal.Decimal {
	return invrules.ComputeStockByItemID(s.ledger.Movements(), s.policy)
}

// CurrentStock stock de un artículo; cero si no tiene movimientos.
func (s *StockService) CurrentStock(itemID string) decimal.Decimal {
	return invrules.StockOf(s.StockByItemID(), itemID)
}

// Levels catálogo con stock, filtrado, y totales sobre el catálogo completo.
func (s *StockService) Levels(filter invrules.StockFilter) ([]entity.StockLevel, entity.StockCounts) {
	return invrules.Levels(s.catalog.Items(), s.StockByItemID(), filter)
}

// Level vista de un solo artículo.
func (s *StockService) Level(itemID string) (entity.StockLevel, bool) {
	for _, it := range s.catalog.Items() {
		if it.ID == itemID {
			return invrules.Level(it, s.CurrentStock(itemID)), true
		}
	}
	return entity.StockLevel{}, false
}

// LowStock artículos con stock bajo, de menor a mayor stock.
func (s *StockService) LowStock() []entity.StockLevel {
	levels, _ := s.Levels(invrules.FilterLow)
	sortByStock(levels)
	return levels
}

// OutOfStock artículos agotados, en orden de catálogo.
func (s *StockService) OutOfStock() []entity.StockLevel {
	levels, _ := s.Levels(invrules.FilterOut)
	return levels
}

// RecentMovements últimos movimientos por CreatedAt descendente. limit <= 0 devuelve todos.
func (s *StockService) RecentMovements(limit int) []MovementView {
	movs := s.ledger.Movements()
	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].CreatedAt.After(movs[j].CreatedAt)
	})
	if limit > 0 && len(movs) > limit {
		movs = movs[:limit]
	}
	byID := make(map[string]entity.Item)
	for _, it := range s.catalog.Items() {
		byID[it.ID] = it
	}
	out := make([]MovementView, 0, len(movs))
	for _, m := range movs {
		v := MovementView{Movement: m, ItemName: UnknownItemName, ItemSKU: UnknownItemSKU}
		if it, ok := byID[m.ItemID]; ok {
			v.ItemName, v.ItemSKU, v.ItemUnit, v.KnownItem = it.Name, it.SKU, it.Unit, true
		}
		out = append(out, v)
	}
	return out
}

// Dashboard compone el resumen con el límite configurado de movimientos recientes.
func (s *StockService) Dashboard() Dashboard {
	all, counts := s.Levels(invrules.FilterAll)
	d := Dashboard{
		Counts:     counts,
		LowStock:   []entity.StockLevel{},
		OutOfStock: []entity.StockLevel{},
		Recent:     s.RecentMovements(s.recentLimit),
	}
	for _, lvl := range all {
		switch {
		case lvl.IsLow:
			d.LowStock = append(d.LowStock, lvl)
		case lvl.IsOut:
			d.OutOfStock = append(d.OutOfStock, lvl)
		}
	}
	sortByStock(d.LowStock)
	return d
}

func sortByStock(levels []entity.StockLevel) {
	sort.SliceStable(levels, func(i, j int) bool {
		if !levels[i].Stock.Equal(levels[j].Stock) {
			return levels[i].Stock.LessThan(levels[j].Stock)
		}
		return levels[i].Item.Name < levels[j].Item.Name
	})
}
