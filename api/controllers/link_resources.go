package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/links"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
)

var (
	containsKeys   = linkKeys{left: "orderId", right: "productId"}
	storesKeys     = linkKeys{left: "warehouseId", right: "productId"}
	suppliesKeys   = linkKeys{left: "supplierId", right: "productId"}
	supervisesKeys = linkKeys{left: "employeeId", right: "warehouseId"}
	managesKeys    = linkKeys{left: "employeeId", right: "orderId"}
	appliesKeys    = linkKeys{left: "discountId", right: "orderId"}
)

type containsRequest struct {
	OrderID   int `json:"orderId" validate:"required,gt=0"`
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gte=0"`
}

func decodeContains(r *http.Request) (*models.Contains, int, int, error) {
	var payload containsRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	row := models.Contains{OrderID: payload.OrderID, ProductID: payload.ProductID, Quantity: payload.Quantity}
	return &row, payload.OrderID, payload.ProductID, nil
}

type quantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func decodeQuantity(r *http.Request) (map[string]any, error) {
	var payload quantityRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return map[string]any{"quantity": payload.Quantity}, nil
}

func ListContains(svc *links.Service[models.Contains], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, containsKeys)
}

func GetContains(svc *links.Service[models.Contains], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, containsKeys)
}

func CreateContains(svc *links.Service[models.Contains], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeContains)
}

func UpdateContains(svc *links.Service[models.Contains], logg *logger.Logger) http.HandlerFunc {
	return updateLink(svc, logg, containsKeys, decodeQuantity)
}

func DeleteContains(svc *links.Service[models.Contains], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, containsKeys)
}

type storesRequest struct {
	WarehouseID   int `json:"warehouseId" validate:"required,gt=0"`
	ProductID     int `json:"productId" validate:"required,gt=0"`
	StockQuantity int `json:"stockQuantity" validate:"gte=0"`
}

func decodeStores(r *http.Request) (*models.Stores, int, int, error) {
	var payload storesRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	now := time.Now().UTC()
	row := models.Stores{
		WarehouseID:   payload.WarehouseID,
		ProductID:     payload.ProductID,
		StockQuantity: payload.StockQuantity,
		LastUpdated:   &now,
	}
	return &row, payload.WarehouseID, payload.ProductID, nil
}

type stockQuantityRequest struct {
	StockQuantity int `json:"stockQuantity" validate:"gte=0"`
}

func decodeStockQuantity(r *http.Request) (map[string]any, error) {
	var payload stockQuantityRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	return map[string]any{
		"stock_quantity": payload.StockQuantity,
		"last_updated":   time.Now().UTC(),
	}, nil
}

func ListStores(svc *links.Service[models.Stores], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, storesKeys)
}

func GetStores(svc *links.Service[models.Stores], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, storesKeys)
}

func CreateStores(svc *links.Service[models.Stores], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeStores)
}

func UpdateStores(svc *links.Service[models.Stores], logg *logger.Logger) http.HandlerFunc {
	return updateLink(svc, logg, storesKeys, decodeStockQuantity)
}

func DeleteStores(svc *links.Service[models.Stores], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, storesKeys)
}

type suppliesRequest struct {
	SupplierID int `json:"supplierId" validate:"required,gt=0"`
	ProductID  int `json:"productId" validate:"required,gt=0"`
}

func decodeSupplies(r *http.Request) (*models.Supplies, int, int, error) {
	var payload suppliesRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	row := models.Supplies{SupplierID: payload.SupplierID, ProductID: payload.ProductID}
	return &row, payload.SupplierID, payload.ProductID, nil
}

func ListSupplies(svc *links.Service[models.Supplies], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, suppliesKeys)
}

func GetSupplies(svc *links.Service[models.Supplies], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, suppliesKeys)
}

func CreateSupplies(svc *links.Service[models.Supplies], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeSupplies)
}

func DeleteSupplies(svc *links.Service[models.Supplies], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, suppliesKeys)
}

type supervisesRequest struct {
	EmployeeID  int `json:"employeeId" validate:"required,gt=0"`
	WarehouseID int `json:"warehouseId" validate:"required,gt=0"`
}

func decodeSupervises(r *http.Request) (*models.Supervises, int, int, error) {
	var payload supervisesRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	row := models.Supervises{EmployeeID: payload.EmployeeID, WarehouseID: payload.WarehouseID}
	return &row, payload.EmployeeID, payload.WarehouseID, nil
}

func ListSupervises(svc *links.Service[models.Supervises], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, supervisesKeys)
}

func GetSupervises(svc *links.Service[models.Supervises], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, supervisesKeys)
}

func CreateSupervises(svc *links.Service[models.Supervises], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeSupervises)
}

func DeleteSupervises(svc *links.Service[models.Supervises], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, supervisesKeys)
}

type managesRequest struct {
	EmployeeID int `json:"employeeId" validate:"required,gt=0"`
	OrderID    int `json:"orderId" validate:"required,gt=0"`
}

func decodeManages(r *http.Request) (*models.Manages, int, int, error) {
	var payload managesRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	row := models.Manages{EmployeeID: payload.EmployeeID, OrderID: payload.OrderID}
	return &row, payload.EmployeeID, payload.OrderID, nil
}

func ListManages(svc *links.Service[models.Manages], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, managesKeys)
}

func GetManages(svc *links.Service[models.Manages], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, managesKeys)
}

func CreateManages(svc *links.Service[models.Manages], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeManages)
}

func DeleteManages(svc *links.Service[models.Manages], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, managesKeys)
}

type appliesRequest struct {
	DiscountID     int             `json:"discountId" validate:"required,gt=0"`
	OrderID        int             `json:"orderId" validate:"required,gt=0"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

func decodeApplies(r *http.Request) (*models.Applies, int, int, error) {
	var payload appliesRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, 0, 0, err
	}
	if payload.DiscountAmount.IsNegative() {
		return nil, 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "discountAmount must not be negative")
	}
	row := models.Applies{
		DiscountID:     payload.DiscountID,
		OrderID:        payload.OrderID,
		DiscountAmount: payload.DiscountAmount,
	}
	return &row, payload.DiscountID, payload.OrderID, nil
}

func ListApplies(svc *links.Service[models.Applies], logg *logger.Logger) http.HandlerFunc {
	return listLinks(svc, logg, appliesKeys)
}

func GetApplies(svc *links.Service[models.Applies], logg *logger.Logger) http.HandlerFunc {
	return getLink(svc, logg, appliesKeys)
}

func CreateApplies(svc *links.Service[models.Applies], logg *logger.Logger) http.HandlerFunc {
	return createLink(svc, logg, decodeApplies)
}

func DeleteApplies(svc *links.Service[models.Applies], logg *logger.Logger) http.HandlerFunc {
	return deleteLink(svc, logg, appliesKeys)
}
