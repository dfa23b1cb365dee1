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

type discountRequest struct {
	DiscountID    int             `json:"discountId" validate:"required,gt=0"`
	DiscountName  string          `json:"discountName" validate:"required"`
	DiscountType  string          `json:"discountType" validate:"required"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
}

func decodeDiscount(r *http.Request) (*models.Discount, error) {
	var payload discountRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Discount{
		DiscountID:    payload.DiscountID,
		DiscountName:  payload.DiscountName,
		DiscountType:  payload.DiscountType,
		DiscountValue: payload.DiscountValue,
		StartDate:     payload.StartDate,
		EndDate:       payload.EndDate,
	}, nil
}

func discountScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if name := validators.QueryString(r, "name"); name != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("discount_name LIKE ?", "%"+name+"%")
		})
	}
	if discountType := validators.QueryString(r, "type"); discountType != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("discount_type = ?", discountType)
		})
	}
	return scopes, nil
}

func ListDiscounts(svc *records.Service[models.Discount], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, discountScopes)
}

func GetDiscount(svc *records.Service[models.Discount], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateDiscount(svc *records.Service[models.Discount], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeDiscount)
}

func UpdateDiscount(svc *records.Service[models.Discount], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeDiscount)
}

func DeleteDiscount(svc *records.Service[models.Discount], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
