package models

import "time"

// Order references one Customer; its line items live in Contains.
type Order struct {
	OrderID     int       `gorm:"column:order_id;primaryKey" json:"orderId"`
	OrderDate   time.Time `gorm:"column:order_date" json:"orderDate"`
	OrderStatus string    `gorm:"column:order_status;not null" json:"orderStatus"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	CustomerID  int       `gorm:"column:customer_id;not null" json:"customerId"`
}

func (Order) TableName() string { return "orders" }

func (o Order) RecordID() int { return o.OrderID }
