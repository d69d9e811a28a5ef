// Package seed contiene el catálogo y el historial de movimientos por defecto, usados en el
// primer arranque y tras un reinicio explícito.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// Items devuelve una copia nueva del catálogo semilla.
func Items() []entity.Item {
	return []entity.Item{
		{ID: "i1", Name: "HDMI Cable 2m", SKU: "HDMI-2M", Unit: "ks", MinStock: decimal.NewFromInt(10)},
		{ID: "i2", Name: "USB-C Charger 65W", SKU: "USBC-65W", Unit: "ks", MinStock: decimal.NewFromInt(5)},
		{ID: "i3", Name: "Ethernet Cable CAT6 5m", SKU: "CAT6-5M", Unit: "ks", MinStock: decimal.NewFromInt(20)},
	}
}

// Movements devuelve una copia nueva del historial semilla.
func Movements() []entity.Movement {
	return []entity.Movement{
		{ID: "m1", ItemID: "i1", Type: entity.MovementTypeIn, Qty: decimal.NewFromInt(30), Note: "Initial stock", CreatedAt: at("2025-12-30T10:00:00Z")},
		{ID: "m2", ItemID: "i1", Type: entity.MovementTypeOut, Qty: decimal.NewFromInt(8), Note: "Issued to team", CreatedAt: at("2025-12-31T08:00:00Z")},
		{ID: "m3", ItemID: "i2", Type: entity.MovementTypeIn, Qty: decimal.NewFromInt(6), Note: "Supplier delivery", CreatedAt: at("2025-12-29T12:00:00Z")},
		{ID: "m4", ItemID: "i2", Type: entity.MovementTypeOut, Qty: decimal.NewFromInt(3), Note: "Workstations", CreatedAt: at("2025-12-31T09:15:00Z")},
		{ID: "m5", ItemID: "i3", Type: entity.MovementTypeIn, Qty: decimal.NewFromInt(40), Note: "Initial stock", CreatedAt: at("2025-12-28T14:00:00Z")},
		{ID: "m6", ItemID: "i3", Type: entity.MovementTypeOut, Qty: decimal.NewFromInt(25), Note: "Office wiring", CreatedAt: at("2025-12-31T07:30:00Z")},
	}
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("seed: fecha inválida " + s)
	}
	return t
}
