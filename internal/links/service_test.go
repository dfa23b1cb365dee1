package links

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLinksTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS orders (
  order_id INTEGER PRIMARY KEY,
  order_status TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL DEFAULT 0,
  customer_id INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY,
  product_name TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL DEFAULT 0,
  category TEXT NOT NULL DEFAULT '',
  brand TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS contains (
  order_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (order_id, product_id)
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newContainsService(t *testing.T, conn *gorm.DB) *Service[models.Contains] {
	t.Helper()
	svc, err := NewService[models.Contains](conn, ContainsResource)
	require.NoError(t, err)
	return svc
}

func seedOrderAndProduct(t *testing.T, conn *gorm.DB, orderID, productID int) {
	t.Helper()
	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (?, 'pending', 1, 1)`, orderID).Error)
	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name, price, category, brand) VALUES (?, 'Widget', 9.99, 'tools', 'Acme')`, productID).Error)
}

func TestLinksCreateAndGet(t *testing.T) {
	conn := setupLinksTestDB(t, "links_create")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	seedOrderAndProduct(t, conn, 10, 100)

	row := models.Contains{OrderID: 10, ProductID: 100, Quantity: 3}
	require.NoError(t, svc.Create(ctx, &row, 10, 100))

	got, err := svc.Get(ctx, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestLinksCreateDuplicatePair(t *testing.T) {
	conn := setupLinksTestDB(t, "links_dup")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	seedOrderAndProduct(t, conn, 10, 100)

	first := models.Contains{OrderID: 10, ProductID: 100, Quantity: 1}
	require.NoError(t, svc.Create(ctx, &first, 10, 100))

	dup := models.Contains{OrderID: 10, ProductID: 100, Quantity: 2}
	err := svc.Create(ctx, &dup, 10, 100)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestLinksCreateMissingParent(t *testing.T) {
	conn := setupLinksTestDB(t, "links_parent")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (10, 'pending', 1, 1)`).Error)

	row := models.Contains{OrderID: 10, ProductID: 404, Quantity: 1}
	err := svc.Create(ctx, &row, 10, 404)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestLinksListFiltersByEndpoint(t *testing.T) {
	conn := setupLinksTestDB(t, "links_list")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	seedOrderAndProduct(t, conn, 10, 100)
	require.NoError(t, conn.Exec(`INSERT INTO orders (order_id, order_status, quantity, customer_id) VALUES (11, 'pending', 1, 1)`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name, price, category, brand) VALUES (101, 'Bolt', 1.50, 'tools', 'Acme')`).Error)

	for _, pair := range [][2]int{{10, 100}, {10, 101}, {11, 100}} {
		row := models.Contains{OrderID: pair[0], ProductID: pair[1], Quantity: 1}
		require.NoError(t, svc.Create(ctx, &row, pair[0], pair[1]))
	}

	orderID := 10
	rows, total, err := svc.List(ctx, pagination.Params{}, &orderID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, 100, rows[0].ProductID)
	assert.Equal(t, 101, rows[1].ProductID)
}

func TestLinksUpdateQuantity(t *testing.T) {
	conn := setupLinksTestDB(t, "links_update")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	seedOrderAndProduct(t, conn, 10, 100)
	row := models.Contains{OrderID: 10, ProductID: 100, Quantity: 1}
	require.NoError(t, svc.Create(ctx, &row, 10, 100))

	require.NoError(t, svc.Update(ctx, map[string]any{"quantity": 0}, 10, 100))

	got, err := svc.Get(ctx, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestLinksDelete(t *testing.T) {
	conn := setupLinksTestDB(t, "links_delete")
	svc := newContainsService(t, conn)
	ctx := context.Background()

	seedOrderAndProduct(t, conn, 10, 100)
	row := models.Contains{OrderID: 10, ProductID: 100, Quantity: 1}
	require.NoError(t, svc.Create(ctx, &row, 10, 100))

	require.NoError(t, svc.Delete(ctx, 10, 100))

	err := svc.Delete(ctx, 10, 100)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
