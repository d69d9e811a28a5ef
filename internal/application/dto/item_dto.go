package dto

import "github.com/shopspring/decimal"

// CreateItemRequest body para POST /api/items. minStock acepta número o texto; lo que no
// sea numérico se guarda como 0.
type CreateItemRequest struct {
	Name     string     `json:"name"`
	SKU      string     `json:"sku"`
	Unit     string     `json:"unit"`
	MinStock NumberText `json:"minStock"`
}

// UpdateItemRequest body para PATCH /api/items/:id. Los campos vacíos conservan el valor.
type UpdateItemRequest struct {
	Name     string     `json:"name"`
	SKU      string     `json:"sku"`
	Unit     string     `json:"unit"`
	MinStock NumberText `json:"minStock"`
}

// ItemResponse artículo del catálogo.
type ItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Unit     string          `json:"unit"`
	MinStock decimal.Decimal `json:"minStock"`
}

// StockLevelResponse artículo con su stock derivado.
type StockLevelResponse struct {
	ItemResponse
	Stock decimal.Decimal `json:"stock"`
	IsLow bool            `json:"isLow"`
	IsOut bool            `json:"isOut"`
}

// StockCountsResponse totales del catálogo completo (no dependen del filtro).
type StockCountsResponse struct {
	All int `json:"all"`
	Low int `json:"low"`
	Out int `json:"out"`
}

// ItemListResponse respuesta de GET /api/items.
type ItemListResponse struct {
	Filter string               `json:"filter"`
	Items  []StockLevelResponse `json:"items"`
	Counts StockCountsResponse  `json:"counts"`
}

// StockMapResponse respuesta de GET /api/stock.
type StockMapResponse struct {
	Policy string                     `json:"policy"`
	Stock  map[string]decimal.Decimal `json:"stock"`
}
