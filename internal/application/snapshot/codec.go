// Package snapshot decodifica, codifica y persiste las instantáneas del catálogo y del libro
// de movimientos. La lectura nunca falla hacia fuera: ante cualquier dato corrupto devuelve
// UseDefault y quien llama usa la semilla.
package snapshot

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// Claves de almacenamiento.
const (
	CatalogKey = "inventory.items.v1"
	LedgerKey  = "inventory.movements.v1"
)

// Decoded resultado etiquetado del paso de decodificación: Data válido o UseDefault.
type Decoded[T any] struct {
	Data       T
	UseDefault bool
}

func useDefault[T any]() Decoded[T] {
	return Decoded[T]{UseDefault: true}
}

// DecodeCatalog acepta un arreglo de artículos o un objeto {"items": [...]}.
// Los elementos no objeto se descartan; los campos ausentes quedan vacíos.
func DecodeCatalog(raw []byte) Decoded[[]invrules.ItemEntry] {
	elems, ok := unwrapArray(raw, "items")
	if !ok {
		return useDefault[[]invrules.ItemEntry]()
	}
	out := make([]invrules.ItemEntry, 0, len(elems))
	for _, e := range elems {
		obj, ok := asObject(e)
		if !ok {
			continue
		}
		out = append(out, invrules.ItemEntry{
			ID: text(obj["id"]),
			ItemInput: invrules.ItemInput{
				Name:     text(obj["name"]),
				SKU:      text(obj["sku"]),
				Unit:     text(obj["unit"]),
				MinStock: text(obj["minStock"]),
			},
		})
	}
	return Decoded[[]invrules.ItemEntry]{Data: out}
}

// DecodeLedger acepta un arreglo de movimientos o un objeto {"movements": [...]}.
// qty no numérico queda en 0 y createdAt ilegible queda en el instante cero.
func DecodeLedger(raw []byte) Decoded[[]entity.Movement] {
	elems, ok := unwrapArray(raw, "movements")
	if !ok {
		return useDefault[[]entity.Movement]()
	}
	out := make([]entity.Movement, 0, len(elems))
	for _, e := range elems {
		obj, ok := asObject(e)
		if !ok {
			continue
		}
		out = append(out, entity.Movement{
			ID:        text(obj["id"]),
			ItemID:    text(obj["itemId"]),
			Type:      entity.MovementType(text(obj["type"])),
			Qty:       number(obj["qty"]),
			Note:      text(obj["note"]),
			CreatedAt: timestamp(obj["createdAt"]),
		})
	}
	return Decoded[[]entity.Movement]{Data: out}
}

type itemJSON struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	SKU      string      `json:"sku"`
	Unit     string      `json:"unit"`
	MinStock json.Number `json:"minStock"`
}

type movementJSON struct {
	ID        string      `json:"id"`
	ItemID    string      `json:"itemId"`
	Type      string      `json:"type"`
	Qty       json.Number `json:"qty"`
	Note      string      `json:"note"`
	CreatedAt string      `json:"createdAt"`
}

// EncodeCatalog serializa el catálogo como arreglo JSON.
func EncodeCatalog(items []entity.Item) ([]byte, error) {
	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, itemJSON{
			ID:       it.ID,
			Name:     it.Name,
			SKU:      it.SKU,
			Unit:     it.Unit,
			MinStock: json.Number(it.MinStock.String()),
		})
	}
	return json.Marshal(out)
}

// EncodeLedger serializa el libro como arreglo JSON, createdAt en RFC 3339 UTC.
func EncodeLedger(movements []entity.Movement) ([]byte, error) {
	out := make([]movementJSON, 0, len(movements))
	for _, m := range movements {
		out = append(out, movementJSON{
			ID:        m.ID,
			ItemID:    m.ItemID,
			Type:      string(m.Type),
			Qty:       json.Number(m.Qty.String()),
			Note:      m.Note,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return json.Marshal(out)
}

// unwrapArray devuelve los elementos si raw es un arreglo, o si es un objeto cuyo campo
// field es un arreglo.
func unwrapArray(raw []byte, field string) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}
	if raw[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		raw = bytes.TrimSpace(obj[field])
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// text devuelve el contenido de un string JSON o el literal de un número; "" en otro caso.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	}
	return ""
}

func number(raw json.RawMessage) decimal.Decimal {
	d, ok := invrules.ParseQuantity(text(raw))
	if !ok {
		return decimal.Zero
	}
	return d
}

func timestamp(raw json.RawMessage) time.Time {
	s := strings.TrimSpace(text(raw))
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
