package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount is applied to Orders via Apply rows.
type Discount struct {
	DiscountID    int             `gorm:"column:discount_id;primaryKey" json:"discountId"`
	DiscountName  string          `gorm:"column:discount_name;not null" json:"discountName"`
	DiscountType  string          `gorm:"column:discount_type;not null" json:"discountType"`
	DiscountValue decimal.Decimal `gorm:"column:discount_value;type:numeric(5,2)" json:"discountValue"`
	StartDate     time.Time       `gorm:"column:start_date" json:"startDate"`
	EndDate       time.Time       `gorm:"column:end_date" json:"endDate"`
}

func (Discount) TableName() string { return "discounts" }

func (d Discount) RecordID() int { return d.DiscountID }
