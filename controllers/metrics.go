package controllers

import (
	"sort"
	"strings"

	"optica-backend/models"
	"optica-backend/utils"
)

// Products with fewer units than this show up in the low-stock count.
const lowStockThreshold = 5

type DailySales struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type DashboardMetrics struct {
	TodayEarnings float64       `json:"today_earnings"`
	MonthEarnings float64       `json:"month_earnings"`
	TotalSales    int           `json:"total_sales"`
	LowStockCount int           `json:"low_stock_count"`
	Last7Days     []DailySales  `json:"last_7_days"`
	RecentSales   []models.Sale `json:"recent_sales"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type ReportMetrics struct {
	Period        string         `json:"period"`
	GrossRevenue  float64        `json:"gross_revenue"`
	TotalCost     float64        `json:"total_cost"`
	TotalDiscount float64        `json:"total_discount"`
	NetProfit     float64        `json:"net_profit"`
	Margin        float64        `json:"margin"`
	Series        []RevenuePoint `json:"series"`
	Sales         []models.Sale  `json:"sales"`
}

// dashboardMetrics derives the dashboard KPIs relative to the given day
// stamp: earnings today and this month, overall sale count, products
// running low, the trailing 7-day series and the 5 most recent sales.
func dashboardMetrics(sales []models.Sale, products []models.Product, today string) DashboardMetrics {
	m := DashboardMetrics{TotalSales: len(sales)}

	month := today[:7]
	for _, s := range sales {
		if s.Date == today {
			m.TodayEarnings += s.Total
		}
		if strings.HasPrefix(s.Date, month) {
			m.MonthEarnings += s.Total
		}
	}

	for _, p := range products {
		if p.Stock < lowStockThreshold {
			m.LowStockCount++
		}
	}

	base := utils.ParseDay(today)
	for i := 6; i >= 0; i-- {
		date := base.AddDate(0, 0, -i).Format(utils.DayFormat)
		var total float64
		for _, s := range sales {
			if s.Date == date {
				total += s.Total
			}
		}
		m.Last7Days = append(m.Last7Days, DailySales{Date: date, Total: total})
	}

	recent := make([]models.Sale, len(sales))
	copy(recent, sales)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	m.RecentSales = recent

	return m
}

// reportMetrics aggregates sales falling in the requested period
// ("day", "week" or "month", relative to today): gross revenue, product
// cost, discounts given, net profit, margin percentage and a per-date
// revenue/profit series.
func reportMetrics(sales []models.Sale, period, today string) ReportMetrics {
	filtered := filterByPeriod(sales, period, today)

	m := ReportMetrics{Period: period, Sales: filtered}
	for _, s := range filtered {
		m.GrossRevenue += s.Total
		m.TotalDiscount += s.Discount
		m.NetProfit += s.Profit
		for _, item := range s.Items {
			m.TotalCost += item.CostPrice * float64(item.Quantity)
		}
	}
	m.Margin = utils.Margin(m.NetProfit, m.GrossRevenue)

	byDate := make(map[string]*RevenuePoint)
	for _, s := range filtered {
		point, ok := byDate[s.Date]
		if !ok {
			point = &RevenuePoint{Date: s.Date}
			byDate[s.Date] = point
		}
		point.Revenue += s.Total
		point.Profit += s.Profit
	}
	for _, point := range byDate {
		m.Series = append(m.Series, *point)
	}
	sort.Slice(m.Series, func(i, j int) bool {
		return m.Series[i].Date < m.Series[j].Date
	})

	return m
}

func filterByPeriod(sales []models.Sale, period, today string) []models.Sale {
	filtered := make([]models.Sale, 0, len(sales))
	now := utils.ParseDay(today)
	month := today[:7]
	for _, s := range sales {
		switch period {
		case "day":
			if s.Date == today {
				filtered = append(filtered, s)
			}
		case "month":
			if strings.HasPrefix(s.Date, month) {
				filtered = append(filtered, s)
			}
		default: // week
			d := utils.ParseDay(s.Date)
			if !d.IsZero() && now.Sub(d).Hours()/24 <= 7 {
				filtered = append(filtered, s)
			}
		}
	}
	return filtered
}
