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

type orderRequest struct {
	OrderID     int       `json:"orderId" validate:"required,gt=0"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `json:"orderStatus" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	CustomerID  int       `json:"customerId" validate:"required,gt=0"`
}

func decodeOrder(r *http.Request) (*models.Order, error) {
	var payload orderRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Order{
		OrderID:     payload.OrderID,
		OrderDate:   payload.OrderDate,
		OrderStatus: payload.OrderStatus,
		Quantity:    payload.Quantity,
		CustomerID:  payload.CustomerID,
	}, nil
}

func orderScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if status := validators.QueryString(r, "status"); status != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("order_status = ?", status)
		})
	}

	customerID, err := validators.ParseOptionalQueryInt(r, "customerId")
	if err != nil {
		return nil, err
	}
	if customerID != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("customer_id = ?", *customerID)
		})
	}

	fromDate, err := validators.ParseOptionalQueryTime(r, "fromDate")
	if err != nil {
		return nil, err
	}
	if fromDate != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("order_date >= ?", *fromDate)
		})
	}

	toDate, err := validators.ParseOptionalQueryTime(r, "toDate")
	if err != nil {
		return nil, err
	}
	if toDate != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("order_date <= ?", *toDate)
		})
	}
	return scopes, nil
}

func ListOrders(svc *records.Service[models.Order], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, orderScopes)
}

func GetOrder(svc *records.Service[models.Order], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateOrder(svc *records.Service[models.Order], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeOrder)
}

func UpdateOrder(svc *records.Service[models.Order], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeOrder)
}

func DeleteOrder(svc *records.Service[models.Order], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
