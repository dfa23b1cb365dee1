package inventory

import (
	"context"
	"fmt"

	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"gorm.io/gorm"
)

// Stock status labels derived from warehouse holdings.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusInStock    = "in_stock"

	// lowStockThreshold is the exclusive upper bound for low_stock.
	lowStockThreshold = 10
)

// TotalStock is a product's summed quantity across all warehouses.
type TotalStock struct {
	ProductID  int   `json:"productId"`
	TotalStock int64 `json:"totalStock"`
}

// StockStatus labels a product's availability.
type StockStatus struct {
	ProductID  int    `json:"productId"`
	TotalStock int64  `json:"totalStock"`
	Status     string `json:"status"`
}

// Service reports warehouse stock levels per product.
type Service struct {
	db *gorm.DB
}

// NewService builds the inventory service.
func NewService(conn *gorm.DB) (*Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &Service{db: conn}, nil
}

// TotalStock sums the product's quantity over every warehouse holding it.
func (s *Service) TotalStock(ctx context.Context, productID int) (*TotalStock, error) {
	total, err := s.totalFor(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &TotalStock{ProductID: productID, TotalStock: total}, nil
}

// StockStatus classifies the product's total stock into availability bands.
func (s *Service) StockStatus(ctx context.Context, productID int) (*StockStatus, error) {
	total, err := s.totalFor(ctx, productID)
	if err != nil {
		return nil, err
	}

	status := StatusInStock
	switch {
	case total == 0:
		status = StatusOutOfStock
	case total < lowStockThreshold:
		status = StatusLowStock
	}
	return &StockStatus{ProductID: productID, TotalStock: total, Status: status}, nil
}

func (s *Service) totalFor(ctx context.Context, productID int) (int64, error) {
	conn := s.db.WithContext(ctx)

	var exists int64
	if err := conn.Table("products").Where("product_id = ?", productID).Count(&exists).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("checking product %d", productID))
	}
	if exists == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", productID))
	}

	var total int64
	err := conn.Raw(`SELECT COALESCE(SUM(stock_quantity), 0) FROM stores WHERE product_id = ?`, productID).Scan(&total).Error
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("summing stock for product %d", productID))
	}
	return total, nil
}
