package inventory

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// ItemInput datos crudos de un artículo tal como llegan del llamador.
// MinStock es texto para poder aplicar la coerción "no numérico -> 0".
type ItemInput struct {
	Name     string
	SKU      string
	Unit     string
	MinStock string
}

// ItemEntry artículo completo recibido en bloque (instantánea o reemplazo del catálogo).
// ID vacío recibe un identificador nuevo.
type ItemEntry struct {
	ID string
	ItemInput
}

// ItemPatch actualización parcial: los campos vacíos (o MinStock no numérico) conservan
// el valor actual.
type ItemPatch struct {
	Name     string
	SKU      string
	Unit     string
	MinStock string
}

// maxScale decimales que se conservan; más allá se redondea.
const maxScale = 20

// ParseQuantity interpreta un número finito. Devuelve false si el texto está vacío o no es
// un número (NaN, Inf o basura incluidos). Lo que desborda un float64 (1e400) no es finito;
// lo que lo subdesborda (1e-400) vale 0.
func ParseQuantity(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, false
	}
	if math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}
	if d.Exponent() < -maxScale {
		d = d.Round(maxScale)
	}
	return d, true
}

// NormalizeItem recorta textos, aplica la unidad por defecto y fuerza MinStock a un número
// finito (0 si no se puede interpretar). No asigna ID ni valida.
func NormalizeItem(in ItemInput, defaultUnit string) entity.Item {
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = defaultUnit
	}
	minStock, ok := ParseQuantity(in.MinStock)
	if !ok {
		minStock = decimal.Zero
	}
	return entity.Item{
		Name:     strings.TrimSpace(in.Name),
		SKU:      strings.TrimSpace(in.SKU),
		Unit:     unit,
		MinStock: minStock,
	}
}

// ApplyPatch fusiona el parche sobre el artículo sin destruir campos existentes.
func ApplyPatch(item entity.Item, patch ItemPatch) entity.Item {
	if v := strings.TrimSpace(patch.Name); v != "" {
		item.Name = v
	}
	if v := strings.TrimSpace(patch.SKU); v != "" {
		item.SKU = v
	}
	if v := strings.TrimSpace(patch.Unit); v != "" {
		item.Unit = v
	}
	if v, ok := ParseQuantity(patch.MinStock); ok {
		item.MinStock = v
	}
	return item
}

// SKUKey clave de comparación de SKU sin distinguir mayúsculas (case folding Unicode).
func SKUKey(sku string) string {
	return cases.Fold().String(strings.TrimSpace(sku))
}

// HasRequiredFields indica si nombre y SKU normalizados no están vacíos.
func HasRequiredFields(item entity.Item) bool {
	return item.Name != "" && item.SKU != ""
}
