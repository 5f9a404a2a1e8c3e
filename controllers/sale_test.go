package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"optica-backend/database"
	"optica-backend/middlewares"
	"optica-backend/models"
	"optica-backend/routes"
	"optica-backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires the full route stack over a fresh in-memory database
// loaded with the seed dataset.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.DB = db
	require.NoError(t, database.Migrate())
	require.NoError(t, database.Seed())

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	routes.Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateSaleDerivesTotals(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c1","items":[{"product_id":"p1","quantity":1}],"discount":0}`, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	var sale models.Sale
	require.NoError(t, json.Unmarshal(raw, &sale))
	assert.Equal(t, float64(1800), sale.Subtotal)
	assert.Equal(t, float64(1800), sale.Total)
	assert.Equal(t, float64(1000), sale.Profit)
	assert.Equal(t, "María García López", sale.ClientName)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Ray-Ban Aviator Classic", sale.Items[0].ProductName)
	assert.Equal(t, float64(800), sale.Items[0].CostPrice)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/product/p1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var product models.Product
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, 11, product.Stock)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/client/c1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var client models.Client
	require.NoError(t, json.Unmarshal(raw, &client))
	assert.Equal(t, utils.Today(), client.LastPurchaseDate)
}

func TestCreateSaleClampsTotalAtZero(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c2","items":[{"product_id":"p10","quantity":1}],"discount":99999}`, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	var sale models.Sale
	require.NoError(t, json.Unmarshal(raw, &sale))
	assert.Equal(t, float64(600), sale.Subtotal)
	assert.Equal(t, float64(0), sale.Total)
}

func TestCreateSaleRejectsUnknownReferences(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"ghost","items":[{"product_id":"p1","quantity":1}]}`, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c1","items":[{"product_id":"ghost","quantity":1}]}`, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// The rejected attempts must not have moved any stock.
	_, raw := doJSON(t, app, fiber.MethodGet, "/api/product/p1", "", nil)
	var product models.Product
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, 12, product.Stock)
}

func TestCreateSaleValidatesInput(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c1","items":[]}`, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c1","items":[{"product_id":"p1","quantity":0}]}`, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateSaleIdempotentReplay(t *testing.T) {
	app := setupApp(t)
	body := `{"client_id":"c1","items":[{"product_id":"p1","quantity":1}],"discount":0}`
	headers := map[string]string{"Idempotency-Key": "pos-terminal-42"}

	resp, first := doJSON(t, app, fiber.MethodPost, "/api/sale", body, headers)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, second := doJSON(t, app, fiber.MethodPost, "/api/sale", body, headers)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, string(first), string(second), "replay returns the stored response")

	// Stock decremented once, not twice.
	_, raw := doJSON(t, app, fiber.MethodGet, "/api/product/p1", "", nil)
	var product models.Product
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, 11, product.Stock)

	// Same key with a different body is a conflict.
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/sale",
		`{"client_id":"c2","items":[{"product_id":"p2","quantity":1}],"discount":0}`, headers)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAdjustStockEndpointClamps(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPatch, "/api/product/p1/stock", `{"delta":-20}`, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var product models.Product
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, 0, product.Stock)

	resp, _ = doJSON(t, app, fiber.MethodPatch, "/api/product/ghost/stock", `{"delta":1}`, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteClientKeepsSales(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/client/c1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, raw := doJSON(t, app, fiber.MethodGet, "/api/sales", "", nil)
	var out struct {
		Sales []models.Sale `json:"sales"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Sales, 7)
	assert.Equal(t, "María García López", out.Sales[0].ClientName, "snapshot survives deletion")
}

func TestDashboardEndpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		TodayEarnings float64 `json:"today_earnings"`
		TotalSales    int     `json:"total_sales"`
		LowStockCount int     `json:"low_stock_count"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, float64(3500), out.TodayEarnings, "seed sale s1 is dated today")
	assert.Equal(t, 7, out.TotalSales)
	assert.Equal(t, 3, out.LowStockCount) // p3, p5, p8
}

func TestReportEndpointWeek(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/reports?period=week", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		GrossRevenue  float64 `json:"gross_revenue"`
		TotalCost     float64 `json:"total_cost"`
		TotalDiscount float64 `json:"total_discount"`
		NetProfit     float64 `json:"net_profit"`
		Margin        float64 `json:"margin"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, float64(25550), out.GrossRevenue)
	assert.Equal(t, float64(11450), out.TotalCost)
	assert.Equal(t, float64(1250), out.TotalDiscount)
	assert.Equal(t, float64(13450), out.NetProfit)
	assert.Equal(t, 52.6, out.Margin)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/reports?period=year", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
