// Package xmlexport exporta el reporte de stock a XML e importa catálogos en XML, con etree.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

var _ inventory.ReportRenderer = (*StockReportEncoder)(nil)

// StockReportEncoder implementa inventory.ReportRenderer.
type StockReportEncoder struct {
	Indent int
}

// NewStockReportEncoder construye el encoder con sangría de 2 espacios.
func NewStockReportEncoder() *StockReportEncoder {
	return &StockReportEncoder{Indent: 2}
}

// Render produce:
//
//	<stockReport generatedAt="..." policy="...">
//	  <counts all="3" low="2" out="0"/>
//	  <item id="i1" sku="HDMI-2M" unit="ks" status="OK">
//	    <name>HDMI Cable 2m</name><stock>22</stock><minStock>10</minStock>
//	  </item>
//	</stockReport>
func (e *StockReportEncoder) Render(_ context.Context, report inventory.StockReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("stockReport")
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("policy", string(report.Policy))

	counts := root.CreateElement("counts")
	counts.CreateAttr("all", strconv.Itoa(report.Counts.All))
	counts.CreateAttr("low", strconv.Itoa(report.Counts.Low))
	counts.CreateAttr("out", strconv.Itoa(report.Counts.Out))

	for _, l := range report.Levels {
		item := root.CreateElement("item")
		item.CreateAttr("id", l.Item.ID)
		item.CreateAttr("sku", l.Item.SKU)
		item.CreateAttr("unit", l.Item.Unit)
		item.CreateAttr("status", invrules.StatusOf(l))
		item.CreateElement("name").SetText(l.Item.Name)
		item.CreateElement("stock").SetText(l.Stock.String())
		item.CreateElement("minStock").SetText(l.Item.MinStock.String())
	}

	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out.Bytes(), nil
}

// DecodeCatalog lee artículos desde <items><item .../></items> o desde un <stockReport>
// exportado. Cada campo se toma del atributo o, si falta, del elemento hijo del mismo nombre.
// La normalización y el filtrado los hace el catálogo. Acepta UTF-8 e ISO-8859-1.
func DecodeCatalog(raw []byte) ([]invrules.ItemEntry, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("xml: parsear catálogo: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("xml: documento sin raíz")
	}
	if root.Tag != "items" && root.Tag != "stockReport" {
		return nil, fmt.Errorf("xml: raíz inesperada <%s>", root.Tag)
	}

	entries := []invrules.ItemEntry{}
	for _, el := range root.SelectElements("item") {
		entries = append(entries, invrules.ItemEntry{
			ID: field(el, "id"),
			ItemInput: invrules.ItemInput{
				Name:     field(el, "name"),
				SKU:      field(el, "sku"),
				Unit:     field(el, "unit"),
				MinStock: field(el, "minStock"),
			},
		})
	}
	return entries, nil
}

func field(el *etree.Element, name string) string {
	if v := el.SelectAttrValue(name, ""); v != "" {
		return v
	}
	if child := el.SelectElement(name); child != nil {
		return strings.TrimSpace(child.Text())
	}
	return ""
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return input, nil
}
