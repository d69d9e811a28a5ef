package inventory

import (
	"context"
	"time"

	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	invrules "github.com/OnKodr-dev/inventory-app/internal/domain/inventory"
)

// StockReport foto del stock de todo el catálogo para exportar.
type StockReport struct {
	GeneratedAt time.Time
	Policy      invrules.StockPolicy
	Levels      []entity.StockLevel
	Counts      entity.StockCounts
}

// ReportRenderer convierte un StockReport a un formato de archivo (PDF, XML).
type ReportRenderer interface {
	Render(ctx context.Context, report StockReport) ([]byte, error)
}

// ReportService arma los reportes de stock.
type ReportService struct {
	stock *StockService
	clock Clock
}

// NewReportService construye el servicio de reportes.
func NewReportService(stock *StockService, clock Clock) *ReportService {
	return &ReportService{stock: stock, clock: clock}
}

// Build arma el reporte con el estado actual.
func (s *ReportService) Build() StockReport {
	levels, counts := s.stock.Levels(invrules.FilterAll)
	return StockReport{
		GeneratedAt: s.clock.Now(),
		Policy:      s.stock.Policy(),
		Levels:      levels,
		Counts:      counts,
	}
}

// Render arma el reporte y lo pasa al renderizador.
func (s *ReportService) Render(ctx context.Context, r ReportRenderer) ([]byte, error) {
	return r.Render(ctx, s.Build())
}
