package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Association tables. Each row is identified by its composite key; both
// columns are renumbered by the cascade coordinator when an endpoint
// identity changes.

// Contains links an Order to a Product line with a quantity.
type Contains struct {
	OrderID   int `gorm:"column:order_id;primaryKey" json:"orderId"`
	ProductID int `gorm:"column:product_id;primaryKey" json:"productId"`
	Quantity  int `gorm:"column:quantity;not null" json:"quantity"`
}

func (Contains) TableName() string { return "contains" }

// Stores links a Warehouse to a Product it holds.
type Stores struct {
	WarehouseID   int        `gorm:"column:warehouse_id;primaryKey" json:"warehouseId"`
	ProductID     int        `gorm:"column:product_id;primaryKey" json:"productId"`
	StockQuantity int        `gorm:"column:stock_quantity;not null" json:"stockQuantity"`
	LastUpdated   *time.Time `gorm:"column:last_updated" json:"lastUpdated,omitempty"`
}

func (Stores) TableName() string { return "stores" }

// Supplies links a Supplier to a Product it provides.
type Supplies struct {
	SupplierID int `gorm:"column:supplier_id;primaryKey" json:"supplierId"`
	ProductID  int `gorm:"column:product_id;primaryKey" json:"productId"`
}

func (Supplies) TableName() string { return "supplies" }

// Supervises links an Employee to a Warehouse they oversee.
type Supervises struct {
	EmployeeID  int `gorm:"column:employee_id;primaryKey" json:"employeeId"`
	WarehouseID int `gorm:"column:warehouse_id;primaryKey" json:"warehouseId"`
}

func (Supervises) TableName() string { return "supervises" }

// Manages links an Employee to an Order they handle.
type Manages struct {
	EmployeeID int `gorm:"column:employee_id;primaryKey" json:"employeeId"`
	OrderID    int `gorm:"column:order_id;primaryKey" json:"orderId"`
}

func (Manages) TableName() string { return "manages" }

// Applies links a Discount to an Order it reduces.
type Applies struct {
	DiscountID     int             `gorm:"column:discount_id;primaryKey" json:"discountId"`
	OrderID        int             `gorm:"column:order_id;primaryKey" json:"orderId"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(5,2)" json:"discountAmount"`
}

func (Applies) TableName() string { return "applies" }
