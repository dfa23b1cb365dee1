package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInventoryTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY,
  product_name TEXT NOT NULL,
  price NUMERIC NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS stores (
  warehouse_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  last_updated DATETIME,
  PRIMARY KEY (warehouse_id, product_id)
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newInventoryService(t *testing.T, conn *gorm.DB) *Service {
	t.Helper()
	svc, err := NewService(conn)
	require.NoError(t, err)
	return svc
}

func TestTotalStockSumsAcrossWarehouses(t *testing.T) {
	conn := setupInventoryTestDB(t, "inventory_total")
	svc := newInventoryService(t, conn)

	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name) VALUES (100, 'Widget')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO stores (warehouse_id, product_id, stock_quantity) VALUES (1, 100, 7), (2, 100, 5)`).Error)

	got, err := svc.TotalStock(context.Background(), 100)
	require.NoError(t, err)
	assert.EqualValues(t, 12, got.TotalStock)
}

func TestTotalStockMissingProduct(t *testing.T) {
	conn := setupInventoryTestDB(t, "inventory_missing")
	svc := newInventoryService(t, conn)

	_, err := svc.TotalStock(context.Background(), 404)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestStockStatusBands(t *testing.T) {
	conn := setupInventoryTestDB(t, "inventory_status")
	svc := newInventoryService(t, conn)
	ctx := context.Background()

	require.NoError(t, conn.Exec(`INSERT INTO products (product_id, product_name) VALUES (1, 'Empty'), (2, 'Scarce'), (3, 'Plenty')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO stores (warehouse_id, product_id, stock_quantity) VALUES (1, 2, 9), (1, 3, 10)`).Error)

	cases := []struct {
		productID int
		want      string
	}{
		{1, StatusOutOfStock},
		{2, StatusLowStock},
		{3, StatusInStock},
	}
	for _, tc := range cases {
		got, err := svc.StockStatus(ctx, tc.productID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Status, "product %d", tc.productID)
	}
}
