package xmlexport_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/domain/seed"
	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/xmlexport"
)

func seedReport() inventory.StockReport {
	stock := invrules.ComputeStockByItemID(seed.Movements(), invrules.PolicyAllowNegative)
	levels, counts := invrules.Levels(seed.Items(), stock, invrules.FilterAll)
	return inventory.StockReport{
		GeneratedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		Policy:      invrules.PolicyAllowNegative,
		Levels:      levels,
		Counts:      counts,
	}
}

func TestRender_Estructura(t *testing.T) {
	out, err := xmlexport.NewStockReportEncoder().Render(context.Background(), seedReport())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("stockReport")
	require.NotNil(t, root)
	assert.Equal(t, "2026-01-05T09:00:00Z", root.SelectAttrValue("generatedAt", ""))
	assert.Equal(t, "allow_negative", root.SelectAttrValue("policy", ""))
	assert.Equal(t, "2", root.SelectElement("counts").SelectAttrValue("low", ""))

	items := root.SelectElements("item")
	require.Len(t, items, 3)
	assert.Equal(t, "HDMI-2M", items[0].SelectAttrValue("sku", ""))
	assert.Equal(t, "OK", items[0].SelectAttrValue("status", ""))
	assert.Equal(t, "22", items[0].SelectElement("stock").Text())
	assert.Equal(t, "LOW", items[1].SelectAttrValue("status", ""))
}

func TestDecodeCatalog_ReimportaExportacion(t *testing.T) {
	out, err := xmlexport.NewStockReportEncoder().Render(context.Background(), seedReport())
	require.NoError(t, err)

	entries, err := xmlexport.DecodeCatalog(out)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "i1", entries[0].ID)
	assert.Equal(t, "HDMI Cable 2m", entries[0].Name)
	assert.Equal(t, "10", entries[0].MinStock)
}

func TestDecodeCatalog_Atributos(t *testing.T) {
	raw := `<items><item sku="MS-1" minStock="3" name="Mouse"/><item><name> Teclado </name><sku>KB-1</sku></item></items>`
	entries, err := xmlexport.DecodeCatalog([]byte(raw))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Mouse", entries[0].Name)
	assert.Equal(t, "3", entries[0].MinStock)
	assert.Equal(t, "Teclado", entries[1].Name)
	assert.Equal(t, "KB-1", entries[1].SKU)
}

func TestDecodeCatalog_Invalido(t *testing.T) {
	_, err := xmlexport.DecodeCatalog([]byte(`<otro/>`))
	assert.Error(t, err)
	_, err = xmlexport.DecodeCatalog([]byte(`no es xml`))
	assert.Error(t, err)
}

func TestDecodeCatalog_Latin1(t *testing.T) {
	raw := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><items><item sku=\"PA-1\" name=\"Pa\xf1uelo\"/></items>")
	entries, err := xmlexport.DecodeCatalog(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pañuelo", entries[0].Name)
}
