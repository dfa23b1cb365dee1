package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanphamm/supplydash-backend/internal/cascade"
	"github.com/tuanphamm/supplydash-backend/pkg/config"
	"github.com/tuanphamm/supplydash-backend/pkg/db"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var routerTestDDL = []string{
	`CREATE TABLE IF NOT EXISTS customers (
  customer_id INTEGER PRIMARY KEY,
  customer_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone_number TEXT NOT NULL DEFAULT '',
  signup_date DATETIME,
  street TEXT NOT NULL DEFAULT '',
  district TEXT NOT NULL DEFAULT '',
  postal_number TEXT NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS orders (
  order_id INTEGER PRIMARY KEY,
  order_date DATETIME,
  order_status TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL DEFAULT 0,
  customer_id INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY,
  product_name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL DEFAULT 0,
  weight NUMERIC,
  category TEXT NOT NULL DEFAULT '',
  brand TEXT NOT NULL DEFAULT '',
  date_added DATETIME,
  images TEXT,
  length NUMERIC,
  width NUMERIC,
  height NUMERIC
);`,
	`CREATE TABLE IF NOT EXISTS suppliers (
  supplier_id INTEGER PRIMARY KEY,
  company_name TEXT NOT NULL,
  representative_name TEXT NOT NULL DEFAULT '',
  phone_number TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS warehouses (
  warehouse_id INTEGER PRIMARY KEY,
  warehouse_name TEXT NOT NULL,
  area NUMERIC,
  capacity NUMERIC,
  status TEXT NOT NULL DEFAULT '',
  phone_number TEXT NOT NULL DEFAULT '',
  stock_quantity INTEGER NOT NULL DEFAULT 0
);`,
	`CREATE TABLE IF NOT EXISTS employees (
  employee_id INTEGER PRIMARY KEY,
  full_name TEXT NOT NULL,
  department TEXT NOT NULL DEFAULT '',
  hire_date DATETIME,
  email TEXT NOT NULL DEFAULT '',
  phone_number TEXT NOT NULL DEFAULT '',
  salary NUMERIC,
  role TEXT NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS discounts (
  discount_id INTEGER PRIMARY KEY,
  discount_name TEXT NOT NULL,
  discount_type TEXT NOT NULL DEFAULT '',
  discount_value NUMERIC,
  start_date DATETIME,
  end_date DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS shippings (
  shipping_id INTEGER PRIMARY KEY,
  cost NUMERIC,
  start_date DATETIME,
  end_date DATETIME,
  status TEXT NOT NULL DEFAULT '',
  tracking_number TEXT NOT NULL DEFAULT '',
  carrier_name TEXT NOT NULL DEFAULT '',
  transport_mode TEXT NOT NULL DEFAULT '',
  shipping_street TEXT NOT NULL DEFAULT '',
  shipping_district TEXT NOT NULL DEFAULT '',
  shipping_postal_number TEXT NOT NULL DEFAULT '',
  order_id INTEGER NOT NULL,
  shipping_date DATETIME,
  delivery_date DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS contains (
  order_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (order_id, product_id)
);`,
	`CREATE TABLE IF NOT EXISTS stores (
  warehouse_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  last_updated DATETIME,
  PRIMARY KEY (warehouse_id, product_id)
);`,
	`CREATE TABLE IF NOT EXISTS supplies (
  supplier_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  PRIMARY KEY (supplier_id, product_id)
);`,
	`CREATE TABLE IF NOT EXISTS supervises (
  employee_id INTEGER NOT NULL,
  warehouse_id INTEGER NOT NULL,
  PRIMARY KEY (employee_id, warehouse_id)
);`,
	`CREATE TABLE IF NOT EXISTS manages (
  employee_id INTEGER NOT NULL,
  order_id INTEGER NOT NULL,
  PRIMARY KEY (employee_id, order_id)
);`,
	`CREATE TABLE IF NOT EXISTS applies (
  discount_id INTEGER NOT NULL,
  order_id INTEGER NOT NULL,
  discount_amount NUMERIC,
  PRIMARY KEY (discount_id, order_id)
);`,
}

func setupRouter(t *testing.T, name string) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	for _, stmt := range routerTestDDL {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})
	client := db.FromGorm(conn)
	retryCfg := config.RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	coord, err := cascade.NewCoordinator(client, logg, retryCfg, nil)
	require.NoError(t, err)

	svcs, err := NewServices(conn, coord)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "dev"

	return NewRouter(cfg, logg, client, svcs, nil), conn
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthLive(t *testing.T) {
	handler, _ := setupRouter(t, "router_health")

	rec := doJSON(t, handler, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get("X-SupplyDash-Env"))
}

func TestCustomerCRUDFlow(t *testing.T) {
	handler, _ := setupRouter(t, "router_customers")

	payload := map[string]any{
		"customerId":   1,
		"customerName": "Anna",
		"email":        "anna@example.com",
	}
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/customers", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWarehouseRenumberViaPut(t *testing.T) {
	handler, conn := setupRouter(t, "router_renumber")

	create := map[string]any{
		"warehouseId":   3,
		"warehouseName": "North Hub",
		"status":        "active",
	}
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/warehouses", create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NoError(t, conn.Exec(`INSERT INTO stores (warehouse_id, product_id, stock_quantity) VALUES (3, 11, 4)`).Error)

	update := map[string]any{
		"warehouseId":   9,
		"warehouseName": "North Hub",
		"status":        "active",
	}
	rec = doJSON(t, handler, http.MethodPut, "/api/v1/warehouses/3", update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/warehouses/9", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/warehouses/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var warehouseID int
	require.NoError(t, conn.Raw(`SELECT warehouse_id FROM stores WHERE product_id = 11`).Scan(&warehouseID).Error)
	assert.Equal(t, 9, warehouseID)
}

func TestContainsDuplicateConflict(t *testing.T) {
	handler, conn := setupRouter(t, "router_contains")

	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (10, 'pending', 1, 1)`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name, price) VALUES (100, 'Widget', 9.99)`).Error)

	payload := map[string]any{"orderId": 10, "productId": 100, "quantity": 2}
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/contains", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/contains", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestValidationFailureReturnsBadRequest(t *testing.T) {
	handler, _ := setupRouter(t, "router_validation")

	// Missing required fields.
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/customers", map[string]any{"customerId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsSummaryEndpoint(t *testing.T) {
	handler, conn := setupRouter(t, "router_analytics")

	require.NoError(t, conn.Exec(`INSERT INTO customers (customer_id, customer_name, email) VALUES (1, 'Anna', 'a@example.com')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name, price) VALUES (100, 'Widget', 10.00)`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_date, order_status, quantity, customer_id) VALUES (10, '2025-03-01 10:00:00', 'shipped', 2, 1)`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO contains (order_id, product_id, quantity) VALUES (10, 100, 2)`).Error)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/analytics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			TotalCustomers int64  `json:"totalCustomers"`
			TotalRevenue   string `json:"totalRevenue"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.EqualValues(t, 1, body.Data.TotalCustomers)
	assert.Equal(t, "20", body.Data.TotalRevenue)
}
