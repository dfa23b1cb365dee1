package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is referenced by Contains, Stores, and Supplies rows.
type Product struct {
	ProductID   int             `gorm:"column:product_id;primaryKey" json:"productId"`
	ProductName string          `gorm:"column:product_name;not null" json:"productName"`
	Description string          `gorm:"column:description;not null" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Weight      decimal.Decimal `gorm:"column:weight;type:numeric(10,2)" json:"weight"`
	Category    string          `gorm:"column:category;not null" json:"category"`
	Brand       string          `gorm:"column:brand;not null" json:"brand"`
	DateAdded   time.Time       `gorm:"column:date_added" json:"dateAdded"`
	Images      string          `gorm:"column:images" json:"images"`
	Length      decimal.Decimal `gorm:"column:length;type:numeric(10,2)" json:"length"`
	Width       decimal.Decimal `gorm:"column:width;type:numeric(10,2)" json:"width"`
	Height      decimal.Decimal `gorm:"column:height;type:numeric(10,2)" json:"height"`
}

func (Product) TableName() string { return "products" }

func (p Product) RecordID() int { return p.ProductID }
