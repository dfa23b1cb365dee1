package models

import "time"

// Customer owns zero or more Orders.
type Customer struct {
	CustomerID   int       `gorm:"column:customer_id;primaryKey" json:"customerId"`
	CustomerName string    `gorm:"column:customer_name;not null" json:"customerName"`
	Email        string    `gorm:"column:email;not null" json:"email"`
	PhoneNumber  string    `gorm:"column:phone_number;not null" json:"phoneNumber"`
	SignupDate   time.Time `gorm:"column:signup_date" json:"signupDate"`
	Street       string    `gorm:"column:street;not null" json:"street"`
	District     string    `gorm:"column:district;not null" json:"district"`
	PostalNumber string    `gorm:"column:postal_number;not null" json:"postalNumber"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) RecordID() int { return c.CustomerID }
