package controllers

import (
	"net/http"

	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/gorm"
)

type supplierRequest struct {
	SupplierID         int    `json:"supplierId" validate:"required,gt=0"`
	CompanyName        string `json:"companyName" validate:"required"`
	RepresentativeName string `json:"representativeName"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email" validate:"omitempty,email"`
}

func decodeSupplier(r *http.Request) (*models.Supplier, error) {
	var payload supplierRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Supplier{
		SupplierID:         payload.SupplierID,
		CompanyName:        payload.CompanyName,
		RepresentativeName: payload.RepresentativeName,
		PhoneNumber:        payload.PhoneNumber,
		Email:              payload.Email,
	}, nil
}

func supplierScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if company := validators.QueryString(r, "companyName"); company != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("company_name LIKE ?", "%"+company+"%")
		})
	}
	if rep := validators.QueryString(r, "representativeName"); rep != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("representative_name LIKE ?", "%"+rep+"%")
		})
	}
	if email := validators.QueryString(r, "email"); email != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("email = ?", email)
		})
	}
	return scopes, nil
}

func ListSuppliers(svc *records.Service[models.Supplier], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, supplierScopes)
}

func GetSupplier(svc *records.Service[models.Supplier], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateSupplier(svc *records.Service[models.Supplier], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeSupplier)
}

func UpdateSupplier(svc *records.Service[models.Supplier], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeSupplier)
}

func DeleteSupplier(svc *records.Service[models.Supplier], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
