package controllers

import (
	"net/http"
	"time"

	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/gorm"
)

type customerRequest struct {
	CustomerID   int       `json:"customerId" validate:"required,gt=0"`
	CustomerName string    `json:"customerName" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PhoneNumber  string    `json:"phoneNumber"`
	SignupDate   time.Time `json:"signupDate"`
	Street       string    `json:"street"`
	District     string    `json:"district"`
	PostalNumber string    `json:"postalNumber"`
}

func decodeCustomer(r *http.Request) (*models.Customer, error) {
	var payload customerRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Customer{
		CustomerID:   payload.CustomerID,
		CustomerName: payload.CustomerName,
		Email:        payload.Email,
		PhoneNumber:  payload.PhoneNumber,
		SignupDate:   payload.SignupDate,
		Street:       payload.Street,
		District:     payload.District,
		PostalNumber: payload.PostalNumber,
	}, nil
}

func customerScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if name := validators.QueryString(r, "name"); name != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("customer_name LIKE ?", "%"+name+"%")
		})
	}
	if email := validators.QueryString(r, "email"); email != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("email = ?", email)
		})
	}
	if district := validators.QueryString(r, "district"); district != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("district = ?", district)
		})
	}
	return scopes, nil
}

func ListCustomers(svc *records.Service[models.Customer], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, customerScopes)
}

func GetCustomer(svc *records.Service[models.Customer], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateCustomer(svc *records.Service[models.Customer], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeCustomer)
}

func UpdateCustomer(svc *records.Service[models.Customer], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeCustomer)
}

func DeleteCustomer(svc *records.Service[models.Customer], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
