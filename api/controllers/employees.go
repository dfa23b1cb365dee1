package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/gorm"
)

type employeeRequest struct {
	EmployeeID  int             `json:"employeeId" validate:"required,gt=0"`
	FullName    string          `json:"fullName" validate:"required"`
	Department  string          `json:"department" validate:"required"`
	HireDate    time.Time       `json:"hireDate"`
	Email       string          `json:"email" validate:"omitempty,email"`
	PhoneNumber string          `json:"phoneNumber"`
	Salary      decimal.Decimal `json:"salary"`
	Role        string          `json:"role"`
}

func decodeEmployee(r *http.Request) (*models.Employee, error) {
	var payload employeeRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Employee{
		EmployeeID:  payload.EmployeeID,
		FullName:    payload.FullName,
		Department:  payload.Department,
		HireDate:    payload.HireDate,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Salary:      payload.Salary,
		Role:        payload.Role,
	}, nil
}

func employeeScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if department := validators.QueryString(r, "department"); department != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("department = ?", department)
		})
	}
	if role := validators.QueryString(r, "role"); role != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("role = ?", role)
		})
	}

	minSalary, err := validators.ParseOptionalQueryDecimal(r, "minSalary")
	if err != nil {
		return nil, err
	}
	if minSalary != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("salary >= ?", *minSalary)
		})
	}

	maxSalary, err := validators.ParseOptionalQueryDecimal(r, "maxSalary")
	if err != nil {
		return nil, err
	}
	if maxSalary != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("salary <= ?", *maxSalary)
		})
	}
	return scopes, nil
}

func ListEmployees(svc *records.Service[models.Employee], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, employeeScopes)
}

func GetEmployee(svc *records.Service[models.Employee], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateEmployee(svc *records.Service[models.Employee], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeEmployee)
}

func UpdateEmployee(svc *records.Service[models.Employee], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeEmployee)
}

func DeleteEmployee(svc *records.Service[models.Employee], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
