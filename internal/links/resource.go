package links

// Endpoint describes one side of an association: the key column in the
// association table and the parent table it points at.
type Endpoint struct {
	Column       string
	ParentTable  string
	ParentColumn string
}

// Resource declares an association table and its two endpoints.
type Resource struct {
	Name  string
	Table string
	Left  Endpoint
	Right Endpoint
}

var ContainsResource = Resource{
	Name:  "contains",
	Table: "contains",
	Left:  Endpoint{Column: "order_id", ParentTable: "orders", ParentColumn: "order_id"},
	Right: Endpoint{Column: "product_id", ParentTable: "products", ParentColumn: "product_id"},
}

var StoresResource = Resource{
	Name:  "stores",
	Table: "stores",
	Left:  Endpoint{Column: "warehouse_id", ParentTable: "warehouses", ParentColumn: "warehouse_id"},
	Right: Endpoint{Column: "product_id", ParentTable: "products", ParentColumn: "product_id"},
}

var SuppliesResource = Resource{
	Name:  "supplies",
	Table: "supplies",
	Left:  Endpoint{Column: "supplier_id", ParentTable: "suppliers", ParentColumn: "supplier_id"},
	Right: Endpoint{Column: "product_id", ParentTable: "products", ParentColumn: "product_id"},
}

var SupervisesResource = Resource{
	Name:  "supervises",
	Table: "supervises",
	Left:  Endpoint{Column: "employee_id", ParentTable: "employees", ParentColumn: "employee_id"},
	Right: Endpoint{Column: "warehouse_id", ParentTable: "warehouses", ParentColumn: "warehouse_id"},
}

var ManagesResource = Resource{
	Name:  "manages",
	Table: "manages",
	Left:  Endpoint{Column: "employee_id", ParentTable: "employees", ParentColumn: "employee_id"},
	Right: Endpoint{Column: "order_id", ParentTable: "orders", ParentColumn: "order_id"},
}

var AppliesResource = Resource{
	Name:  "applies",
	Table: "applies",
	Left:  Endpoint{Column: "discount_id", ParentTable: "discounts", ParentColumn: "discount_id"},
	Right: Endpoint{Column: "order_id", ParentTable: "orders", ParentColumn: "order_id"},
}
