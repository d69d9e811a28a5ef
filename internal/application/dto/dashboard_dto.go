package dto

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Counts     StockCountsResponse    `json:"counts"`
	LowStock   []StockLevelResponse   `json:"lowStock"`
	OutOfStock []StockLevelResponse   `json:"outOfStock"`
	Recent     []MovementViewResponse `json:"recent"`
}
