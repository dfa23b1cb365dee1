package cascade

// Entity labels used in specs, logs, and metrics.
const (
	EntityCustomer  = "customer"
	EntityOrder     = "order"
	EntityProduct   = "product"
	EntitySupplier  = "supplier"
	EntityWarehouse = "warehouse"
	EntityEmployee  = "employee"
	EntityDiscount  = "discount"
	EntityShipping  = "shipping"
)

// CustomerSpec cascades through orders: deleting a customer removes their
// orders and everything hanging off those orders.
var CustomerSpec = Spec{
	Entity:   EntityCustomer,
	Table:    "customers",
	IDColumn: "customer_id",
	Dependents: []Dependent{
		{Table: "contains", Column: "order_id", Via: "orders", ViaKey: "order_id", ViaRef: "customer_id"},
		{Table: "manages", Column: "order_id", Via: "orders", ViaKey: "order_id", ViaRef: "customer_id"},
		{Table: "applies", Column: "order_id", Via: "orders", ViaKey: "order_id", ViaRef: "customer_id"},
		{Table: "shippings", Column: "order_id", Via: "orders", ViaKey: "order_id", ViaRef: "customer_id"},
		{Table: "orders", Column: "customer_id"},
	},
}

var OrderSpec = Spec{
	Entity:   EntityOrder,
	Table:    "orders",
	IDColumn: "order_id",
	Dependents: []Dependent{
		{Table: "contains", Column: "order_id"},
		{Table: "manages", Column: "order_id"},
		{Table: "applies", Column: "order_id"},
		{Table: "shippings", Column: "order_id"},
	},
}

var ProductSpec = Spec{
	Entity:   EntityProduct,
	Table:    "products",
	IDColumn: "product_id",
	Dependents: []Dependent{
		{Table: "contains", Column: "product_id"},
		{Table: "stores", Column: "product_id"},
		{Table: "supplies", Column: "product_id"},
	},
}

var SupplierSpec = Spec{
	Entity:   EntitySupplier,
	Table:    "suppliers",
	IDColumn: "supplier_id",
	Dependents: []Dependent{
		{Table: "supplies", Column: "supplier_id"},
	},
}

var WarehouseSpec = Spec{
	Entity:   EntityWarehouse,
	Table:    "warehouses",
	IDColumn: "warehouse_id",
	Dependents: []Dependent{
		{Table: "stores", Column: "warehouse_id"},
		{Table: "supervises", Column: "warehouse_id"},
	},
}

var EmployeeSpec = Spec{
	Entity:   EntityEmployee,
	Table:    "employees",
	IDColumn: "employee_id",
	Dependents: []Dependent{
		{Table: "supervises", Column: "employee_id"},
		{Table: "manages", Column: "employee_id"},
	},
}

var DiscountSpec = Spec{
	Entity:   EntityDiscount,
	Table:    "discounts",
	IDColumn: "discount_id",
	Dependents: []Dependent{
		{Table: "applies", Column: "discount_id"},
	},
}

// ShippingSpec has no dependents; the coordinator still provides the
// transactional existence check and uniform error mapping.
var ShippingSpec = Spec{
	Entity:   EntityShipping,
	Table:    "shippings",
	IDColumn: "shipping_id",
}
