package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee supervises Warehouses and manages Orders.
type Employee struct {
	EmployeeID  int             `gorm:"column:employee_id;primaryKey" json:"employeeId"`
	FullName    string          `gorm:"column:full_name;not null" json:"fullName"`
	Department  string          `gorm:"column:department;not null" json:"department"`
	HireDate    time.Time       `gorm:"column:hire_date" json:"hireDate"`
	Email       string          `gorm:"column:email;not null" json:"email"`
	PhoneNumber string          `gorm:"column:phone_number;not null" json:"phoneNumber"`
	Salary      decimal.Decimal `gorm:"column:salary;type:numeric(12,2)" json:"salary"`
	Role        string          `gorm:"column:role;not null" json:"role"`
}

func (Employee) TableName() string { return "employees" }

func (e Employee) RecordID() int { return e.EmployeeID }
