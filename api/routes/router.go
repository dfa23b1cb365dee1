package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/tuanphamm/supplydash-backend/api/controllers"
	"github.com/tuanphamm/supplydash-backend/api/middleware"
	"github.com/tuanphamm/supplydash-backend/internal/analytics"
	"github.com/tuanphamm/supplydash-backend/internal/cascade"
	"github.com/tuanphamm/supplydash-backend/internal/inventory"
	"github.com/tuanphamm/supplydash-backend/internal/links"
	"github.com/tuanphamm/supplydash-backend/internal/records"
	"github.com/tuanphamm/supplydash-backend/pkg/config"
	"github.com/tuanphamm/supplydash-backend/pkg/db"
	"github.com/tuanphamm/supplydash-backend/pkg/db/models"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
)

// Services bundles every domain service the router mounts.
type Services struct {
	Customers  *records.Service[models.Customer]
	Orders     *records.Service[models.Order]
	Products   *records.Service[models.Product]
	Suppliers  *records.Service[models.Supplier]
	Warehouses *records.Service[models.Warehouse]
	Employees  *records.Service[models.Employee]
	Discounts  *records.Service[models.Discount]
	Shippings  *records.Service[models.Shipping]

	Contains   *links.Service[models.Contains]
	Stores     *links.Service[models.Stores]
	Supplies   *links.Service[models.Supplies]
	Supervises *links.Service[models.Supervises]
	Manages    *links.Service[models.Manages]
	Applies    *links.Service[models.Applies]

	Analytics *analytics.Service
	Inventory *inventory.Service
}

// NewServices wires every domain service onto one GORM connection and one
// cascade coordinator.
func NewServices(conn *gorm.DB, coord *cascade.Coordinator) (*Services, error) {
	var svcs Services
	var err error

	if svcs.Customers, err = newRecordService[models.Customer](conn, coord, cascade.CustomerSpec); err != nil {
		return nil, err
	}
	if svcs.Orders, err = newRecordService[models.Order](conn, coord, cascade.OrderSpec); err != nil {
		return nil, err
	}
	if svcs.Products, err = newRecordService[models.Product](conn, coord, cascade.ProductSpec); err != nil {
		return nil, err
	}
	if svcs.Suppliers, err = newRecordService[models.Supplier](conn, coord, cascade.SupplierSpec); err != nil {
		return nil, err
	}
	if svcs.Warehouses, err = newRecordService[models.Warehouse](conn, coord, cascade.WarehouseSpec); err != nil {
		return nil, err
	}
	if svcs.Employees, err = newRecordService[models.Employee](conn, coord, cascade.EmployeeSpec); err != nil {
		return nil, err
	}
	if svcs.Discounts, err = newRecordService[models.Discount](conn, coord, cascade.DiscountSpec); err != nil {
		return nil, err
	}
	if svcs.Shippings, err = newRecordService[models.Shipping](conn, coord, cascade.ShippingSpec); err != nil {
		return nil, err
	}

	if svcs.Contains, err = links.NewService[models.Contains](conn, links.ContainsResource); err != nil {
		return nil, err
	}
	if svcs.Stores, err = links.NewService[models.Stores](conn, links.StoresResource); err != nil {
		return nil, err
	}
	if svcs.Supplies, err = links.NewService[models.Supplies](conn, links.SuppliesResource); err != nil {
		return nil, err
	}
	if svcs.Supervises, err = links.NewService[models.Supervises](conn, links.SupervisesResource); err != nil {
		return nil, err
	}
	if svcs.Manages, err = links.NewService[models.Manages](conn, links.ManagesResource); err != nil {
		return nil, err
	}
	if svcs.Applies, err = links.NewService[models.Applies](conn, links.AppliesResource); err != nil {
		return nil, err
	}

	if svcs.Analytics, err = analytics.NewService(conn); err != nil {
		return nil, err
	}
	if svcs.Inventory, err = inventory.NewService(conn); err != nil {
		return nil, err
	}
	return &svcs, nil
}

func newRecordService[T records.Model](conn *gorm.DB, coord *cascade.Coordinator, spec cascade.Spec) (*records.Service[T], error) {
	svc, err := records.NewService(records.NewRepository[T](conn, spec.IDColumn), coord, spec)
	if err != nil {
		return nil, fmt.Errorf("wiring %s service: %w", spec.Entity, err)
	}
	return svc, nil
}

// NewRouter assembles the full HTTP surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	svcs *Services,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	if svcs == nil {
		svcs = &Services{}
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(svcs.Customers, logg))
			r.Post("/", controllers.CreateCustomer(svcs.Customers, logg))
			r.Get("/{id}", controllers.GetCustomer(svcs.Customers, logg))
			r.Put("/{id}", controllers.UpdateCustomer(svcs.Customers, logg))
			r.Delete("/{id}", controllers.DeleteCustomer(svcs.Customers, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svcs.Orders, logg))
			r.Post("/", controllers.CreateOrder(svcs.Orders, logg))
			r.Get("/{id}", controllers.GetOrder(svcs.Orders, logg))
			r.Put("/{id}", controllers.UpdateOrder(svcs.Orders, logg))
			r.Delete("/{id}", controllers.DeleteOrder(svcs.Orders, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Post("/", controllers.CreateProduct(svcs.Products, logg))
			r.Get("/{id}", controllers.GetProduct(svcs.Products, logg))
			r.Put("/{id}", controllers.UpdateProduct(svcs.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(svcs.Products, logg))
			r.Get("/{id}/total-stock", controllers.ProductTotalStock(svcs.Inventory, logg))
			r.Get("/{id}/stock-status", controllers.ProductStockStatus(svcs.Inventory, logg))
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.ListSuppliers(svcs.Suppliers, logg))
			r.Post("/", controllers.CreateSupplier(svcs.Suppliers, logg))
			r.Get("/{id}", controllers.GetSupplier(svcs.Suppliers, logg))
			r.Put("/{id}", controllers.UpdateSupplier(svcs.Suppliers, logg))
			r.Delete("/{id}", controllers.DeleteSupplier(svcs.Suppliers, logg))
		})

		r.Route("/warehouses", func(r chi.Router) {
			r.Get("/", controllers.ListWarehouses(svcs.Warehouses, logg))
			r.Post("/", controllers.CreateWarehouse(svcs.Warehouses, logg))
			r.Get("/{id}", controllers.GetWarehouse(svcs.Warehouses, logg))
			r.Put("/{id}", controllers.UpdateWarehouse(svcs.Warehouses, logg))
			r.Delete("/{id}", controllers.DeleteWarehouse(svcs.Warehouses, logg))
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", controllers.ListEmployees(svcs.Employees, logg))
			r.Post("/", controllers.CreateEmployee(svcs.Employees, logg))
			r.Get("/{id}", controllers.GetEmployee(svcs.Employees, logg))
			r.Put("/{id}", controllers.UpdateEmployee(svcs.Employees, logg))
			r.Delete("/{id}", controllers.DeleteEmployee(svcs.Employees, logg))
		})

		r.Route("/discounts", func(r chi.Router) {
			r.Get("/", controllers.ListDiscounts(svcs.Discounts, logg))
			r.Post("/", controllers.CreateDiscount(svcs.Discounts, logg))
			r.Get("/{id}", controllers.GetDiscount(svcs.Discounts, logg))
			r.Put("/{id}", controllers.UpdateDiscount(svcs.Discounts, logg))
			r.Delete("/{id}", controllers.DeleteDiscount(svcs.Discounts, logg))
		})

		r.Route("/shippings", func(r chi.Router) {
			r.Get("/", controllers.ListShippings(svcs.Shippings, logg))
			r.Post("/", controllers.CreateShipping(svcs.Shippings, logg))
			r.Get("/{id}", controllers.GetShipping(svcs.Shippings, logg))
			r.Put("/{id}", controllers.UpdateShipping(svcs.Shippings, logg))
			r.Delete("/{id}", controllers.DeleteShipping(svcs.Shippings, logg))
		})

		r.Route("/contains", func(r chi.Router) {
			r.Get("/", controllers.ListContains(svcs.Contains, logg))
			r.Post("/", controllers.CreateContains(svcs.Contains, logg))
			r.Get("/{orderId}/{productId}", controllers.GetContains(svcs.Contains, logg))
			r.Put("/{orderId}/{productId}", controllers.UpdateContains(svcs.Contains, logg))
			r.Delete("/{orderId}/{productId}", controllers.DeleteContains(svcs.Contains, logg))
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.ListStores(svcs.Stores, logg))
			r.Post("/", controllers.CreateStores(svcs.Stores, logg))
			r.Get("/{warehouseId}/{productId}", controllers.GetStores(svcs.Stores, logg))
			r.Put("/{warehouseId}/{productId}", controllers.UpdateStores(svcs.Stores, logg))
			r.Delete("/{warehouseId}/{productId}", controllers.DeleteStores(svcs.Stores, logg))
		})

		r.Route("/supplies", func(r chi.Router) {
			r.Get("/", controllers.ListSupplies(svcs.Supplies, logg))
			r.Post("/", controllers.CreateSupplies(svcs.Supplies, logg))
			r.Get("/{supplierId}/{productId}", controllers.GetSupplies(svcs.Supplies, logg))
			r.Delete("/{supplierId}/{productId}", controllers.DeleteSupplies(svcs.Supplies, logg))
		})

		r.Route("/supervises", func(r chi.Router) {
			r.Get("/", controllers.ListSupervises(svcs.Supervises, logg))
			r.Post("/", controllers.CreateSupervises(svcs.Supervises, logg))
			r.Get("/{employeeId}/{warehouseId}", controllers.GetSupervises(svcs.Supervises, logg))
			r.Delete("/{employeeId}/{warehouseId}", controllers.DeleteSupervises(svcs.Supervises, logg))
		})

		r.Route("/manages", func(r chi.Router) {
			r.Get("/", controllers.ListManages(svcs.Manages, logg))
			r.Post("/", controllers.CreateManages(svcs.Manages, logg))
			r.Get("/{employeeId}/{orderId}", controllers.GetManages(svcs.Manages, logg))
			r.Delete("/{employeeId}/{orderId}", controllers.DeleteManages(svcs.Manages, logg))
		})

		r.Route("/applies", func(r chi.Router) {
			r.Get("/", controllers.ListApplies(svcs.Applies, logg))
			r.Post("/", controllers.CreateApplies(svcs.Applies, logg))
			r.Get("/{discountId}/{orderId}", controllers.GetApplies(svcs.Applies, logg))
			r.Delete("/{discountId}/{orderId}", controllers.DeleteApplies(svcs.Applies, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", controllers.AnalyticsSummary(svcs.Analytics, logg))
			r.Get("/revenue-by-month", controllers.AnalyticsRevenueByMonth(svcs.Analytics, logg))
			r.Get("/orders-by-month", controllers.AnalyticsOrdersByMonth(svcs.Analytics, logg))
			r.Get("/revenue-by-product", controllers.AnalyticsRevenueByProduct(svcs.Analytics, logg))
		})
	})

	return r
}
