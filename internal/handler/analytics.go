package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the reporting endpoint. Only the `computed`
// section of the payload is real: the counts and the revenue sum are read
// live from the database. The `sample` section is a fixed illustrative
// fixture that never changes with the data — the split is explicit in the
// response so nobody mistakes the demo series for genuine aggregation.
type AnalyticsHandler struct {
	Stats StatsStore
}

func NewAnalyticsHandler(stats StatsStore) *AnalyticsHandler {
	return &AnalyticsHandler{Stats: stats}
}

type monthlyRevenueSample struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type topProductSample struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type statusBreakdownSample struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// The demonstration fixture shipped with the original deployment.
var (
	sampleMonthlyRevenue = []monthlyRevenueSample{
		{Month: "Jan", Revenue: 4500, Orders: 45},
		{Month: "Feb", Revenue: 5200, Orders: 52},
		{Month: "Mar", Revenue: 4800, Orders: 48},
		{Month: "Apr", Revenue: 6100, Orders: 61},
		{Month: "May", Revenue: 7300, Orders: 73},
		{Month: "Jun", Revenue: 8200, Orders: 82},
	}
	sampleTopProducts = []topProductSample{
		{Name: "Classic White Shirt", Sales: 156, Revenue: 4680},
		{Name: "Blue Denim Jeans", Sales: 134, Revenue: 6698},
		{Name: "Black Leather Shoes", Sales: 98, Revenue: 8820},
		{Name: "Summer Dress", Sales: 87, Revenue: 3480},
		{Name: "Casual Sneakers", Sales: 76, Revenue: 4560},
	}
	sampleOrdersByStatus = []statusBreakdownSample{
		{Status: "Delivered", Count: 245, Color: "#10B981"},
		{Status: "Shipped", Count: 67, Color: "#3B82F6"},
		{Status: "Ordered", Count: 34, Color: "#F59E0B"},
		{Status: "Cancelled", Count: 12, Color: "#EF4444"},
	}
)

// Get handles GET /api/analytics. The range query parameter is accepted for
// compatibility but unused; the fixture does not vary by range.
func (h *AnalyticsHandler) Get(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	totalProducts, err := h.Stats.CountProducts(ctx)
	if err != nil {
		return serverError(c, err)
	}
	totalUsers, err := h.Stats.CountUsers(ctx)
	if err != nil {
		return serverError(c, err)
	}
	totalOrders, err := h.Stats.CountOrders(ctx)
	if err != nil {
		return serverError(c, err)
	}
	totalRevenue, err := h.Stats.SumOrderTotals(ctx)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"computed": echo.Map{
			"total_revenue":   totalRevenue,
			"total_orders":    totalOrders,
			"total_products":  totalProducts,
			"total_customers": totalUsers,
		},
		"sample": echo.Map{
			"monthly_revenue":  sampleMonthlyRevenue,
			"top_products":     sampleTopProducts,
			"orders_by_status": sampleOrdersByStatus,
		},
	})
}
