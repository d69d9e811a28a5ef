package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
	"github.com/OnKodr-dev/inventory-app/internal/application/inventory"
)

// StockHandler vistas derivadas: stock por artículo, dashboard, reposición y reportes.
type StockHandler struct {
	stock         *inventory.StockService
	replenishment *inventory.ReplenishmentUseCase
	reports       *inventory.ReportService
	pdf           inventory.ReportRenderer
	xml           inventory.ReportRenderer
}

// NewStockHandler construye el handler. pdf y xml pueden ser nil; el reporte responde 404.
func NewStockHandler(
	stock *inventory.StockService,
	replenishment *inventory.ReplenishmentUseCase,
	reports *inventory.ReportService,
	pdf, xml inventory.ReportRenderer,
) *StockHandler {
	return &StockHandler{stock: stock, replenishment: replenishment, reports: reports, pdf: pdf, xml: xml}
}

// Stock godoc
// @Summary      Stock por artículo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockMapResponse
// @Router       /api/stock [get]
func (h *StockHandler) Stock(c *fiber.Ctx) error {
	return c.JSON(dto.StockMapResponse{
		Policy: string(h.stock.Policy()),
		Stock:  h.stock.StockByItemID(),
	})
}

// Dashboard godoc
// @Summary      Resumen de inventario
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *StockHandler) Dashboard(c *fiber.Ctx) error {
	d := h.stock.Dashboard()
	return c.JSON(dto.DashboardResponse{
		Counts:     toCountsResponse(d.Counts),
		LowStock:   toLevelResponses(d.LowStock),
		OutOfStock: toLevelResponses(d.OutOfStock),
		Recent:     toMovementViews(d.Recent),
	})
}

// Replenishment godoc
// @Summary      Sugerencias de reposición
// @Description  Artículos bajo su mínimo, ordenados por déficit relativo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/replenishment [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	list := h.replenishment.Suggestions()
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": toSuggestionDTOs(list),
	})
}

// ReportPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	return h.sendReport(c, h.pdf, "application/pdf", "pdf")
}

// ReportXML godoc
// @Summary      Reporte de stock en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/reports/stock.xml [get]
func (h *StockHandler) ReportXML(c *fiber.Ctx) error {
	return h.sendReport(c, h.xml, fiber.MIMEApplicationXMLCharsetUTF8, "xml")
}

func (h *StockHandler) sendReport(c *fiber.Ctx, r inventory.ReportRenderer, contentType, ext string) error {
	if r == nil {
		return notFound(c)
	}
	report := h.reports.Build()
	body, err := r.Render(c.Context(), report)
	if err != nil {
		return fmt.Errorf("generar reporte %s: %w", ext, err)
	}
	name := fmt.Sprintf("stock-%s.%s", report.GeneratedAt.Format("20060102-1504"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(body)
}
