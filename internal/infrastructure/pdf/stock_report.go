// Package pdf genera el reporte de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha       │  política de stock           │
//	│  RESUMEN: artículos / bajo stock / agotados                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Artículo | Unidad | Stock | Mínimo | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el resumen                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ inventory.ReportRenderer = (*StockReportGenerator)(nil)

// StockReportGenerator implementa inventory.ReportRenderer usando Maroto v2.
type StockReportGenerator struct {
	title string
}

// NewStockReportGenerator construye el generador. title va en la cabecera y en los metadatos.
func NewStockReportGenerator(title string) *StockReportGenerator {
	if title == "" {
		title = "Stock report"
	}
	return &StockReportGenerator{title: title}
}

// Render genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) Render(_ context.Context, report inventory.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(summaryRow(report.Counts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Levels)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *StockReportGenerator) headerRow(report inventory.StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Política: "+string(report.Policy), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(c entity.StockCounts) core.Row {
	cell := func(label string, n int) core.Col {
		return col.New(4).Add(text.New(fmt.Sprintf("%s: %d", label, n), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
		}))
	}
	return row.New(9).Add(
		cell("Artículos", c.All),
		cell("Bajo stock", c.Low),
		cell("Agotados", c.Out),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Artículo", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Stock", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

func tableRows(levels []entity.StockLevel) []core.Row {
	rows := make([]core.Row, 0, len(levels))
	for _, l := range levels {
		status := invrules.StatusOf(l)
		statusProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if status != invrules.StatusOK {
			statusProps.Style = fontstyle.Bold
			statusProps.Color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(l.Item.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Item.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(l.Item.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.Stock.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Item.MinStock.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(status, statusProps)),
		))
	}
	return rows
}

func footerRow(report inventory.StockReport) core.Row {
	summary := fmt.Sprintf("inventory|%s|all=%d|low=%d|out=%d",
		report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		report.Counts.All, report.Counts.Low, report.Counts.Out)
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(summary, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(text.New(summary, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray})),
	)
}
