package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"gorm.io/gorm"
)

// Summary aggregates headline dashboard figures.
type Summary struct {
	TotalCustomers  int64           `json:"totalCustomers"`
	TotalOrders     int64           `json:"totalOrders"`
	TotalProducts   int64           `json:"totalProducts"`
	TotalWarehouses int64           `json:"totalWarehouses"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// MonthlyRevenue is one "YYYY-MM" bucket of revenue.
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyOrders is one "YYYY-MM" bucket of order counts.
type MonthlyOrders struct {
	Month  string `json:"month"`
	Orders int64  `json:"orders"`
}

// ProductRevenue ranks a product by its accumulated line-item revenue.
type ProductRevenue struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// Service answers dashboard aggregation queries against the relational
// store. Revenue is always quantity times current product price summed
// over order line items.
type Service struct {
	db *gorm.DB
}

// NewService builds the analytics service.
func NewService(conn *gorm.DB) (*Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &Service{db: conn}, nil
}

// monthExpr formats order_date as "YYYY-MM" in the connected dialect.
// SQLite is only reached from tests.
func (s *Service) monthExpr() string {
	if s.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', o.order_date)"
	}
	return "to_char(o.order_date, 'YYYY-MM')"
}

// Summary returns entity totals and all-time revenue.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	conn := s.db.WithContext(ctx)

	counts := []struct {
		table string
		dest  *int64
	}{
		{"customers", &out.TotalCustomers},
		{"orders", &out.TotalOrders},
		{"products", &out.TotalProducts},
		{"warehouses", &out.TotalWarehouses},
	}
	for _, c := range counts {
		if err := conn.Table(c.table).Count(c.dest).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("counting %s", c.table))
		}
	}

	err := conn.Raw(`
SELECT COALESCE(SUM(c.quantity * p.price), 0)
FROM contains c
JOIN products p ON p.product_id = c.product_id
`).Scan(&out.TotalRevenue).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summing revenue")
	}
	return &out, nil
}

// RevenueByMonth buckets line-item revenue by order month, ascending.
func (s *Service) RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	stmt := fmt.Sprintf(`
SELECT %s AS month,
       COALESCE(SUM(c.quantity * p.price), 0) AS revenue
FROM orders o
JOIN contains c ON c.order_id = o.order_id
JOIN products p ON p.product_id = c.product_id
GROUP BY month
ORDER BY month
`, s.monthExpr())

	var rows []MonthlyRevenue
	if err := s.db.WithContext(ctx).Raw(stmt).Scan(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bucketing revenue by month")
	}
	return rows, nil
}

// OrdersByMonth buckets order counts by order month, ascending.
func (s *Service) OrdersByMonth(ctx context.Context) ([]MonthlyOrders, error) {
	stmt := fmt.Sprintf(`
SELECT %s AS month,
       COUNT(1) AS orders
FROM orders o
GROUP BY month
ORDER BY month
`, s.monthExpr())

	var rows []MonthlyOrders
	if err := s.db.WithContext(ctx).Raw(stmt).Scan(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bucketing orders by month")
	}
	return rows, nil
}

// RevenueByProduct ranks products by accumulated revenue, highest first.
// Products that never sold are omitted.
func (s *Service) RevenueByProduct(ctx context.Context) ([]ProductRevenue, error) {
	var rows []ProductRevenue
	err := s.db.WithContext(ctx).Raw(`
SELECT p.product_id,
       p.product_name,
       COALESCE(SUM(c.quantity * p.price), 0) AS revenue
FROM products p
JOIN contains c ON c.product_id = p.product_id
GROUP BY p.product_id, p.product_name
ORDER BY revenue DESC
`).Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "ranking product revenue")
	}
	return rows, nil
}
