package controllers

import (
	"testing"

	"optica-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToday = "2026-03-15"

func metricsFixture() []models.Sale {
	return []models.Sale{
		{Id: "s1", Total: 3500, Profit: 1900, Discount: 200, Date: "2026-03-15",
			Items: []models.SaleItem{
				{ProductId: "p1", Quantity: 1, UnitPrice: 1800, CostPrice: 800},
				{ProductId: "p6", Quantity: 2, UnitPrice: 950, CostPrice: 400},
			}},
		{Id: "s2", Total: 7300, Profit: 3950, Discount: 500, Date: "2026-03-14",
			Items: []models.SaleItem{
				{ProductId: "p2", Quantity: 1, UnitPrice: 2200, CostPrice: 950},
				{ProductId: "p7", Quantity: 2, UnitPrice: 2800, CostPrice: 1200},
			}},
		{Id: "s3", Total: 2900, Profit: 1700, Date: "2026-03-10",
			Items: []models.SaleItem{
				{ProductId: "p4", Quantity: 1, UnitPrice: 1200, CostPrice: 500},
				{ProductId: "p8", Quantity: 2, UnitPrice: 850, CostPrice: 350},
			}},
		// Previous month; outside every period except none.
		{Id: "s0", Total: 9999, Profit: 5000, Date: "2026-02-27",
			Items: []models.SaleItem{
				{ProductId: "p5", Quantity: 1, UnitPrice: 9999, CostPrice: 4999},
			}},
	}
}

func TestDashboardMetrics(t *testing.T) {
	products := []models.Product{
		{Id: "p1", Stock: 12},
		{Id: "p3", Stock: 3},
		{Id: "p5", Stock: 2},
		{Id: "p8", Stock: 4},
		{Id: "p10", Stock: 30},
	}

	m := dashboardMetrics(metricsFixture(), products, testToday)

	assert.Equal(t, float64(3500), m.TodayEarnings)
	assert.Equal(t, float64(3500+7300+2900), m.MonthEarnings)
	assert.Equal(t, 4, m.TotalSales)
	assert.Equal(t, 3, m.LowStockCount)

	require.Len(t, m.Last7Days, 7)
	assert.Equal(t, "2026-03-09", m.Last7Days[0].Date)
	assert.Equal(t, "2026-03-15", m.Last7Days[6].Date)
	assert.Equal(t, float64(2900), m.Last7Days[1].Total) // 2026-03-10
	assert.Equal(t, float64(3500), m.Last7Days[6].Total)

	require.Len(t, m.RecentSales, 4)
	assert.Equal(t, "s1", m.RecentSales[0].Id, "most recent first")
	assert.Equal(t, "s0", m.RecentSales[3].Id)
}

func TestDashboardRecentSalesCapsAtFive(t *testing.T) {
	var sales []models.Sale
	for i := 0; i < 8; i++ {
		sales = append(sales, models.Sale{Id: string(rune('a' + i)), Date: testToday})
	}

	m := dashboardMetrics(sales, nil, testToday)
	assert.Len(t, m.RecentSales, 5)
}

func TestReportMetricsWeek(t *testing.T) {
	m := reportMetrics(metricsFixture(), "week", testToday)

	// s1, s2 and s3 fall inside the trailing week; s0 does not.
	require.Len(t, m.Sales, 3)
	assert.Equal(t, float64(13700), m.GrossRevenue)
	assert.Equal(t, float64(700), m.TotalDiscount)
	assert.Equal(t, float64(7550), m.NetProfit)
	// costs: (800+2*400) + (950+2*1200) + (500+2*350) = 6150
	assert.Equal(t, float64(6150), m.TotalCost)
	assert.Equal(t, 55.1, m.Margin) // 7550/13700 → 55.1%

	require.Len(t, m.Series, 3)
	assert.Equal(t, "2026-03-10", m.Series[0].Date)
	assert.Equal(t, "2026-03-15", m.Series[2].Date)
	assert.Equal(t, float64(3500), m.Series[2].Revenue)
	assert.Equal(t, float64(1900), m.Series[2].Profit)
}

func TestReportMetricsDay(t *testing.T) {
	m := reportMetrics(metricsFixture(), "day", testToday)

	require.Len(t, m.Sales, 1)
	assert.Equal(t, float64(3500), m.GrossRevenue)
	assert.Equal(t, float64(1900), m.NetProfit)
	assert.Equal(t, 54.3, m.Margin) // 1900/3500 → 54.3%
}

func TestReportMetricsMonth(t *testing.T) {
	m := reportMetrics(metricsFixture(), "month", testToday)

	require.Len(t, m.Sales, 3, "February sale excluded")
	assert.Equal(t, float64(13700), m.GrossRevenue)
}

func TestReportMetricsZeroRevenueHasZeroMargin(t *testing.T) {
	m := reportMetrics(nil, "week", testToday)

	assert.Zero(t, m.GrossRevenue)
	assert.Zero(t, m.Margin)
	assert.Empty(t, m.Series)
}
