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

type shippingRequest struct {
	ShippingID           int             `json:"shippingId" validate:"required,gt=0"`
	Cost                 decimal.Decimal `json:"cost"`
	StartDate            *time.Time      `json:"startDate"`
	EndDate              *time.Time      `json:"endDate"`
	Status               string          `json:"status" validate:"required"`
	TrackingNumber       string          `json:"trackingNumber"`
	CarrierName          string          `json:"carrierName"`
	TransportMode        string          `json:"transportMode"`
	ShippingStreet       string          `json:"shippingStreet"`
	ShippingDistrict     string          `json:"shippingDistrict"`
	ShippingPostalNumber string          `json:"shippingPostalNumber"`
	OrderID              int             `json:"orderId" validate:"required,gt=0"`
	ShippingDate         time.Time       `json:"shippingDate"`
	DeliveryDate         *time.Time      `json:"deliveryDate"`
}

func decodeShipping(r *http.Request) (*models.Shipping, error) {
	var payload shippingRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Shipping{
		ShippingID:           payload.ShippingID,
		Cost:                 payload.Cost,
		StartDate:            payload.StartDate,
		EndDate:              payload.EndDate,
		Status:               payload.Status,
		TrackingNumber:       payload.TrackingNumber,
		CarrierName:          payload.CarrierName,
		TransportMode:        payload.TransportMode,
		ShippingStreet:       payload.ShippingStreet,
		ShippingDistrict:     payload.ShippingDistrict,
		ShippingPostalNumber: payload.ShippingPostalNumber,
		OrderID:              payload.OrderID,
		ShippingDate:         payload.ShippingDate,
		DeliveryDate:         payload.DeliveryDate,
	}, nil
}

func shippingScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if status := validators.QueryString(r, "status"); status != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("status = ?", status)
		})
	}
	if carrier := validators.QueryString(r, "carrier"); carrier != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("carrier_name = ?", carrier)
		})
	}

	orderID, err := validators.ParseOptionalQueryInt(r, "orderId")
	if err != nil {
		return nil, err
	}
	if orderID != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("order_id = ?", *orderID)
		})
	}
	return scopes, nil
}

func ListShippings(svc *records.Service[models.Shipping], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, shippingScopes)
}

func GetShipping(svc *records.Service[models.Shipping], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateShipping(svc *records.Service[models.Shipping], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeShipping)
}

func UpdateShipping(svc *records.Service[models.Shipping], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeShipping)
}

func DeleteShipping(svc *records.Service[models.Shipping], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
