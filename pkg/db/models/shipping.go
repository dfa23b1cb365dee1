package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipping is one-to-one with Order.
type Shipping struct {
	ShippingID           int             `gorm:"column:shipping_id;primaryKey" json:"shippingId"`
	Cost                 decimal.Decimal `gorm:"column:cost;type:numeric(10,2)" json:"cost"`
	StartDate            *time.Time      `gorm:"column:start_date" json:"startDate"`
	EndDate              *time.Time      `gorm:"column:end_date" json:"endDate"`
	Status               string          `gorm:"column:status;not null" json:"status"`
	TrackingNumber       string          `gorm:"column:tracking_number;not null" json:"trackingNumber"`
	CarrierName          string          `gorm:"column:carrier_name;not null" json:"carrierName"`
	TransportMode        string          `gorm:"column:transport_mode;not null" json:"transportMode"`
	ShippingStreet       string          `gorm:"column:shipping_street;not null" json:"shippingStreet"`
	ShippingDistrict     string          `gorm:"column:shipping_district;not null" json:"shippingDistrict"`
	ShippingPostalNumber string          `gorm:"column:shipping_postal_number;not null" json:"shippingPostalNumber"`
	OrderID              int             `gorm:"column:order_id;not null" json:"orderId"`
	ShippingDate         time.Time       `gorm:"column:shipping_date" json:"shippingDate"`
	DeliveryDate         *time.Time      `gorm:"column:delivery_date" json:"deliveryDate"`
}

func (Shipping) TableName() string { return "shippings" }

func (s Shipping) RecordID() int { return s.ShippingID }
