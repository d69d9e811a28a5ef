package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ItemID string     `json:"itemId"`
	Type   string     `json:"type"` // IN | OUT | ADJUST
	Qty    NumberText `json:"qty"`
	Note   string     `json:"note"`
}

// MovementResponse movimiento del libro.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	Type      string          `json:"type"`
	Qty       decimal.Decimal `json:"qty"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MovementViewResponse movimiento con los datos visibles del artículo.
// Si el artículo ya no existe: itemName "Unknown item", itemSku "-".
type MovementViewResponse struct {
	MovementResponse
	ItemName  string `json:"itemName"`
	ItemSKU   string `json:"itemSku"`
	ItemUnit  string `json:"itemUnit,omitempty"`
	KnownItem bool   `json:"knownItem"`
}

// MovementListResponse respuesta de GET /api/movements.
type MovementListResponse struct {
	State     string                 `json:"state"` // seeded | modified
	Total     int                    `json:"total"`
	Movements []MovementViewResponse `json:"movements"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un artículo bajo su mínimo.
type ReplenishmentSuggestionDTO struct {
	ItemID       string          `json:"itemId"`
	SKU          string          `json:"sku"`
	ItemName     string          `json:"itemName"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	IdealStock   decimal.Decimal `json:"idealStock"`   // MinStock * 1.5
	SuggestedQty decimal.Decimal `json:"suggestedQty"` // IdealStock - CurrentStock
	Priority     int             `json:"priority"`     // 1 = más urgente
}
