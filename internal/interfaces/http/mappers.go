package http

import (
	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

func toItemResponse(it entity.Item) dto.ItemResponse {
	return dto.ItemResponse{ID: it.ID, Name: it.Name, SKU: it.SKU, Unit: it.Unit, MinStock: it.MinStock}
}

func toLevelResponse(l entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{ItemResponse: toItemResponse(l.Item), Stock: l.Stock, IsLow: l.IsLow, IsOut: l.IsOut}
}

func toLevelResponses(levels []entity.StockLevel) []dto.StockLevelResponse {
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, toLevelResponse(l))
	}
	return out
}

func toCountsResponse(c entity.StockCounts) dto.StockCountsResponse {
	return dto.StockCountsResponse{All: c.All, Low: c.Low, Out: c.Out}
}

func toMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      string(m.Type),
		Qty:       m.Qty,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

func toMovementViews(views []inventory.MovementView) []dto.MovementViewResponse {
	out := make([]dto.MovementViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.MovementViewResponse{
			MovementResponse: toMovementResponse(v.Movement),
			ItemName:         v.ItemName,
			ItemSKU:          v.ItemSKU,
			ItemUnit:         v.ItemUnit,
			KnownItem:        v.KnownItem,
		})
	}
	return out
}

func toSuggestionDTOs(list []inventory.Suggestion) []dto.ReplenishmentSuggestionDTO {
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ItemID:       s.Item.ID,
			SKU:          s.Item.SKU,
			ItemName:     s.Item.Name,
			Unit:         s.Item.Unit,
			CurrentStock: s.CurrentStock,
			MinStock:     s.Item.MinStock,
			IdealStock:   s.IdealStock,
			SuggestedQty: s.SuggestedQty,
			Priority:     s.Priority,
		})
	}
	return out
}
