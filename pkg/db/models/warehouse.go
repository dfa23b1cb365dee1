package models

import "github.com/shopspring/decimal"

// Warehouse stores Products via Stores rows, supervised via Supervises.
type Warehouse struct {
	WarehouseID   int             `gorm:"column:warehouse_id;primaryKey" json:"warehouseId"`
	WarehouseName string          `gorm:"column:warehouse_name;not null" json:"warehouseName"`
	Area          decimal.Decimal `gorm:"column:area;type:numeric(10,2)" json:"area"`
	Capacity      decimal.Decimal `gorm:"column:capacity;type:numeric(10,2)" json:"capacity"`
	Status        string          `gorm:"column:status;not null" json:"status"`
	PhoneNumber   string          `gorm:"column:phone_number;not null" json:"phoneNumber"`
	StockQuantity int             `gorm:"column:stock_quantity" json:"stockQuantity"`
}

func (Warehouse) TableName() string { return "warehouses" }

func (w Warehouse) RecordID() int { return w.WarehouseID }
