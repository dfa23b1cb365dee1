package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"gorm.io/gorm"
)

type warehouseRequest struct {
	WarehouseID   int             `json:"warehouseId" validate:"required,gt=0"`
	WarehouseName string          `json:"warehouseName" validate:"required"`
	Area          decimal.Decimal `json:"area"`
	Capacity      decimal.Decimal `json:"capacity"`
	Status        string          `json:"status" validate:"required"`
	PhoneNumber   string          `json:"phoneNumber"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
}

func decodeWarehouse(r *http.Request) (*models.Warehouse, error) {
	var payload warehouseRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return &models.Warehouse{
		WarehouseID:   payload.WarehouseID,
		WarehouseName: payload.WarehouseName,
		Area:          payload.Area,
		Capacity:      payload.Capacity,
		Status:        payload.Status,
		PhoneNumber:   payload.PhoneNumber,
		StockQuantity: payload.StockQuantity,
	}, nil
}

func warehouseScopes(r *http.Request) ([]records.Scope, error) {
	var scopes []records.Scope
	if name := validators.QueryString(r, "name"); name != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("warehouse_name LIKE ?", "%"+name+"%")
		})
	}
	if status := validators.QueryString(r, "status"); status != "" {
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("status = ?", status)
		})
	}

	bounds := []struct {
		key    string
		clause string
	}{
		{"minArea", "area >= ?"},
		{"maxArea", "area <= ?"},
		{"minCapacity", "capacity >= ?"},
		{"maxCapacity", "capacity <= ?"},
	}
	for _, b := range bounds {
		value, err := validators.ParseOptionalQueryDecimal(r, b.key)
		if err != nil {
			return nil, err
		}
		if value != nil {
			clause, bound := b.clause, *value
			scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
				return q.Where(clause, bound)
			})
		}
	}
	return scopes, nil
}

func ListWarehouses(svc *records.Service[models.Warehouse], logg *logger.Logger) http.HandlerFunc {
	return listRecords(svc, logg, warehouseScopes)
}

func GetWarehouse(svc *records.Service[models.Warehouse], logg *logger.Logger) http.HandlerFunc {
	return getRecord(svc, logg)
}

func CreateWarehouse(svc *records.Service[models.Warehouse], logg *logger.Logger) http.HandlerFunc {
	return createRecord(svc, logg, decodeWarehouse)
}

func UpdateWarehouse(svc *records.Service[models.Warehouse], logg *logger.Logger) http.HandlerFunc {
	return updateRecord(svc, logg, decodeWarehouse)
}

func DeleteWarehouse(svc *records.Service[models.Warehouse], logg *logger.Logger) http.HandlerFunc {
	return deleteRecord(svc, logg)
}
