package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuanphamm/supplydash-backend/api/responses"
	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/inventory"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/gorm"
)

type productRequest struct {
	ProductID   int             `json:"productId" validate:"required,gt=0"`
	ProductName string          `json:"productName" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Weight      decimal.Decimal `json:"weight"`
	Category    string          `json:"category" validate:"required"`
	Brand       string          `json:"brand"`
	DateAdded   time.Time       `json:"dateAdded"`
	Images      string          `json:"images"`
	Length      decimal.Decimal `json:"length"`
	Width       decimal.Decimal `json:"width"`
	Height      decimal.Decimal `json:"height"`
}

func decodeProduct(r *http.Request) (*models.Product, error) {
	var payload productRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	if payload.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return &models.Product{
		ProductID:   payload.ProductID,
		ProductName: payload.ProductName,
		Description: payload.Description,
		Price:       payload.Price,
		Weight:      payload.Weight,
		Category:    payload.Category,
		Brand:       payload.Brand,
		DateAdded:   payload.DateAdded,
		Images:      payload.Images,
		Length:      payload.Length,
		Width:       payload.Width,
		Height:      payload.Height,
	}, nil
}

func productScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if category := validators.QueryString(r, "category"); category != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("category = ?", category)
		})
	}
	if brand := validators.QueryString(r, "brand"); brand != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("brand = ?", brand)
		})
	}

	minPrice, err := validators.ParseOptionalQueryDecimal(r, "minPrice")
	if err != nil {
		return nil, err
	}
	if minPrice != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("price >= ?", *minPrice)
		})
	}

	maxPrice, err := validators.ParseOptionalQueryDecimal(r, "maxPrice")
	if err != nil {
		return nil, err
	}
	if maxPrice != nil {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("price <= ?", *maxPrice)
		})
	}
	return scopes, nil
}

func ListProducts(svc *records.Service[models.Product], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, productScopes)
}

func GetProduct(svc *records.Service[models.Product], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateProduct(svc *records.Service[models.Product], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeProduct)
}

func UpdateProduct(svc *records.Service[models.Product], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeProduct)
}

func DeleteProduct(svc *records.Service[models.Product], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}

// ProductTotalStock reports the product's stock summed over all warehouses.
func ProductTotalStock(svc *inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		total, err := svc.TotalStock(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, total)
	}
}

// ProductStockStatus classifies the product's availability band.
func ProductStockStatus(svc *inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := svc.StockStatus(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, status)
	}
}
