package records

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanphamm/supplydash-backend/internal/cascade"
	"github.com/tuanphamm/supplydash-backend/pkg/config"
	"github.com/tuanphamm/supplydash-backend/pkg/db"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"github.com/tuanphamm/supplydash-backend/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecordsTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
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
		`CREATE TABLE IF NOT EXISTS contains (
  order_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (order_id, product_id)
);`,
		`CREATE TABLE IF NOT EXISTS manages (
  employee_id INTEGER NOT NULL,
  order_id INTEGER NOT NULL,
  PRIMARY KEY (employee_id, order_id)
);`,
		`CREATE TABLE IF NOT EXISTS applies (
  discount_id INTEGER NOT NULL,
  order_id INTEGER NOT NULL,
  PRIMARY KEY (discount_id, order_id)
);`,
		`CREATE TABLE IF NOT EXISTS shippings (
  shipping_id INTEGER PRIMARY KEY,
  status TEXT NOT NULL DEFAULT '',
  tracking_number TEXT NOT NULL DEFAULT '',
  carrier_name TEXT NOT NULL DEFAULT '',
  transport_mode TEXT NOT NULL DEFAULT '',
  shipping_street TEXT NOT NULL DEFAULT '',
  shipping_district TEXT NOT NULL DEFAULT '',
  shipping_postal_number TEXT NOT NULL DEFAULT '',
  order_id INTEGER NOT NULL
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newCustomerService(t *testing.T, conn *gorm.DB) *Service[models.Customer] {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "records-test", Output: io.Discard})
	cfg := config.RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	coord, err := cascade.NewCoordinator(db.FromGorm(conn), logg, cfg, nil)
	require.NoError(t, err)

	repo := NewRepository[models.Customer](conn, "customer_id")
	svc, err := NewService(repo, coord, cascade.CustomerSpec)
	require.NoError(t, err)
	return svc
}

func mustCreateCustomer(t *testing.T, svc *Service[models.Customer], id int, name string) {
	t.Helper()
	row := models.Customer{
		CustomerID:   id,
		CustomerName: name,
		Email:        fmt.Sprintf("%s@example.com", name),
		SignupDate:   time.Now().UTC(),
	}
	require.NoError(t, svc.Create(context.Background(), &row))
}

func TestServiceCreateAndGet(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_create")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	mustCreateCustomer(t, svc, 1, "anna")

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "anna", got.CustomerName)

	_, err = svc.Get(ctx, 42)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceCreateDuplicateID(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_dup")
	svc := newCustomerService(t, conn)

	mustCreateCustomer(t, svc, 1, "anna")

	dup := models.Customer{CustomerID: 1, CustomerName: "impostor", Email: "x@example.com"}
	err := svc.Create(context.Background(), &dup)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestServiceListPagination(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_list")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		mustCreateCustomer(t, svc, i, fmt.Sprintf("cust%d", i))
	}

	rows, total, err := svc.List(ctx, pagination.Params{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].CustomerID)
	assert.Equal(t, 4, rows[1].CustomerID)
}

func TestServiceListScopeFilters(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_scope")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	mustCreateCustomer(t, svc, 1, "anna")
	mustCreateCustomer(t, svc, 2, "bo")

	byName := func(q *gorm.DB) *gorm.DB { return q.Where("customer_name = ?", "bo") }
	rows, total, err := svc.List(ctx, pagination.Params{}, byName)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].CustomerID)
}

func TestServiceUpdateSameIDOverwrites(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_update")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	mustCreateCustomer(t, svc, 1, "anna")

	row := models.Customer{CustomerID: 1, CustomerName: "anna maria", Email: "anna@example.com"}
	require.NoError(t, svc.Update(ctx, 1, &row))

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "anna maria", got.CustomerName)
}

func TestServiceUpdateRenumbersIdentity(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_renumber")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	mustCreateCustomer(t, svc, 1, "anna")
	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (10, 'pending', 1, 1)`).Error)

	row := models.Customer{CustomerID: 9, CustomerName: "anna", Email: "anna@example.com"}
	require.NoError(t, svc.Update(ctx, 1, &row))

	got, err := svc.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "anna", got.CustomerName)

	_, err = svc.Get(ctx, 1)
	require.Error(t, err)

	var customerID int
	require.NoError(t, conn.Raw(`SELECT customer_id FROM orders WHERE order_id = 10`).Scan(&customerID).Error)
	assert.Equal(t, 9, customerID)
}

func TestServiceUpdateMissingRow(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_update_missing")
	svc := newCustomerService(t, conn)

	row := models.Customer{CustomerID: 7, CustomerName: "ghost", Email: "g@example.com"}
	err := svc.Update(context.Background(), 7, &row)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceDeleteCascades(t *testing.T) {
	conn := setupRecordsTestDB(t, "records_delete")
	svc := newCustomerService(t, conn)
	ctx := context.Background()

	mustCreateCustomer(t, svc, 1, "anna")
	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (10, 'pending', 1, 1)`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO contains (order_id, product_id, quantity) VALUES (10, 100, 1)`).Error)

	require.NoError(t, svc.Delete(ctx, 1))

	var count int64
	require.NoError(t, conn.Raw(`SELECT COUNT(1) FROM orders WHERE customer_id = 1`).Scan(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, conn.Raw(`SELECT COUNT(1) FROM contains WHERE order_id = 10`).Scan(&count).Error)
	assert.EqualValues(t, 0, count)
}
