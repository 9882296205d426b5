// Package tableconfig maps every logical table to its display title and
// column descriptors, consumed by the generic grid and the record editor.
package tableconfig

import (
	"sort"

	"KabisaBizSuite/api/grid"
)

type Config struct {
	Title   string        `json:"title"`
	Columns []grid.Column `json:"columns"`
}

var tableConfigs = map[string]Config{
	"Employees": {
		Title: "Employees",
		Columns: []grid.Column{
			{Field: "full_name", HeaderName: "Full Name", MinWidth: 150},
			{Field: "email", HeaderName: "Email", MinWidth: 200},
			{Field: "phone", HeaderName: "Phone", MinWidth: 120},
			{Field: "role", HeaderName: "Role", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "branch_name", HeaderName: "Branch", MinWidth: 120},
			{Field: "salary", HeaderName: "Salary", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "hire_date", HeaderName: "Hire Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "is_active", HeaderName: "Active", MinWidth: 80, Type: grid.TypeBoolean},
		},
	},
	"Branches": {
		Title: "Branches",
		Columns: []grid.Column{
			{Field: "branch_name", HeaderName: "Branch Name", MinWidth: 150},
			{Field: "location_address", HeaderName: "Address", MinWidth: 200},
			{Field: "phone", HeaderName: "Phone", MinWidth: 120},
			{Field: "email", HeaderName: "Email", MinWidth: 150},
			{Field: "manager_name", HeaderName: "Manager", MinWidth: 120},
			{Field: "created_at", HeaderName: "Created", MinWidth: 100, Type: grid.TypeDate},
		},
	},
	"Stock": {
		Title: "Stock Items",
		Columns: []grid.Column{
			{Field: "product_name", HeaderName: "Product Name", MinWidth: 150},
			{Field: "product_id", HeaderName: "Product ID", MinWidth: 120},
			{Field: "quantity_available", HeaderName: "Available", MinWidth: 100, Align: "right"},
			{Field: "unit_price", HeaderName: "Unit Price", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "reorder_level", HeaderName: "Reorder Level", MinWidth: 100, Align: "right"},
			{Field: "branch_name", HeaderName: "Branch", MinWidth: 120},
			{Field: "updated_at", HeaderName: "Last Updated", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Sales": {
		Title: "Sales Records",
		Columns: []grid.Column{
			{Field: "sale_date", HeaderName: "Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "customer_name", HeaderName: "Customer", MinWidth: 150},
			{Field: "total_amount", HeaderName: "Total Amount", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "payment_method", HeaderName: "Payment Method", MinWidth: 120, Type: grid.TypeStatus},
			{Field: "branch_name", HeaderName: "Branch", MinWidth: 120},
			{Field: "salesperson_name", HeaderName: "Salesperson", MinWidth: 150},
			{Field: "created_at", HeaderName: "Created", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Sale_Items": {
		Title: "Sale Items",
		Columns: []grid.Column{
			{Field: "sale_id", HeaderName: "Sale ID", MinWidth: 100},
			{Field: "product_name", HeaderName: "Product", MinWidth: 150},
			{Field: "quantity_sold", HeaderName: "Quantity", MinWidth: 100, Align: "right"},
			{Field: "unit_price", HeaderName: "Unit Price", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "subtotal", HeaderName: "Subtotal", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "created_at", HeaderName: "Created", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Expenses": {
		Title: "Expenses",
		Columns: []grid.Column{
			{Field: "expense_date", HeaderName: "Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "category", HeaderName: "Category", MinWidth: 120, Type: grid.TypeStatus},
			{Field: "amount", HeaderName: "Amount", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "description", HeaderName: "Description", MinWidth: 200},
			{Field: "vehicle_plate_number", HeaderName: "Vehicle", MinWidth: 120},
			{Field: "branch_name", HeaderName: "Branch", MinWidth: 120},
			{Field: "created_by_name", HeaderName: "Created By", MinWidth: 120},
		},
	},
	"Vehicles": {
		Title: "Vehicles",
		Columns: []grid.Column{
			{Field: "plate_number", HeaderName: "Plate Number", MinWidth: 120},
			{Field: "vehicle_type", HeaderName: "Type", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "purchase_date", HeaderName: "Purchase Date", MinWidth: 120, Type: grid.TypeDate},
			{Field: "current_branch_name", HeaderName: "Current Branch", MinWidth: 150},
			{Field: "status", HeaderName: "Status", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "created_at", HeaderName: "Added", MinWidth: 120, Type: grid.TypeDate},
		},
	},
	"Trips": {
		Title: "Trips",
		Columns: []grid.Column{
			{Field: "trip_date", HeaderName: "Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "vehicle_plate_number", HeaderName: "Vehicle", MinWidth: 120},
			{Field: "destination", HeaderName: "Destination", MinWidth: 150},
			{Field: "distance_km", HeaderName: "Distance (km)", MinWidth: 100, Align: "right"},
			{Field: "fuel_cost", HeaderName: "Fuel Cost", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "amount_charged", HeaderName: "Amount Charged", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "profit", HeaderName: "Profit", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "driver_name", HeaderName: "Driver", MinWidth: 120},
		},
	},
	"Orders": {
		Title: "Purchase Orders",
		Columns: []grid.Column{
			{Field: "order_date", HeaderName: "Order Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "supplier_name", HeaderName: "Supplier", MinWidth: 150},
			{Field: "total_amount", HeaderName: "Total Amount", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "amount_paid", HeaderName: "Amount Paid", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "balance_remaining", HeaderName: "Balance", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "status", HeaderName: "Status", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "expected_delivery_date", HeaderName: "Expected Delivery", MinWidth: 120, Type: grid.TypeDate},
		},
	},
	"Payroll": {
		Title: "Payroll Records",
		Columns: []grid.Column{
			{Field: "employee_name", HeaderName: "Employee", MinWidth: 150},
			{Field: "period_start", HeaderName: "Period Start", MinWidth: 100, Type: grid.TypeDate},
			{Field: "period_end", HeaderName: "Period End", MinWidth: 100, Type: grid.TypeDate},
			{Field: "gross_salary", HeaderName: "Gross Salary", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "deductions", HeaderName: "Deductions", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "net_salary", HeaderName: "Net Salary", MinWidth: 120, Type: grid.TypeCurrency},
			{Field: "payment_status", HeaderName: "Status", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "created_at", HeaderName: "Generated", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Stock_Movements": {
		Title: "Stock Movements",
		Columns: []grid.Column{
			{Field: "movement_date", HeaderName: "Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "product_name", HeaderName: "Product", MinWidth: 150},
			{Field: "movement_type", HeaderName: "Type", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "quantity", HeaderName: "Quantity", MinWidth: 100, Align: "right"},
			{Field: "from_branch_name", HeaderName: "From Branch", MinWidth: 120},
			{Field: "to_branch_name", HeaderName: "To Branch", MinWidth: 120},
			{Field: "reference_id", HeaderName: "Reference", MinWidth: 120},
			{Field: "created_at", HeaderName: "Created", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Vehicle_Maintenance": {
		Title: "Vehicle Maintenance",
		Columns: []grid.Column{
			{Field: "maintenance_date", HeaderName: "Date", MinWidth: 100, Type: grid.TypeDate},
			{Field: "vehicle_plate_number", HeaderName: "Vehicle", MinWidth: 120},
			{Field: "maintenance_type", HeaderName: "Type", MinWidth: 120, Type: grid.TypeStatus},
			{Field: "cost", HeaderName: "Cost", MinWidth: 100, Type: grid.TypeCurrency},
			{Field: "description", HeaderName: "Description", MinWidth: 200},
			{Field: "next_service_date", HeaderName: "Next Service", MinWidth: 120, Type: grid.TypeDate},
			{Field: "created_at", HeaderName: "Recorded", MinWidth: 120, Type: grid.TypeDateTime},
		},
	},
	"Documents": {
		Title: "Documents",
		Columns: []grid.Column{
			{Field: "file_name", HeaderName: "File Name", MinWidth: 200},
			{Field: "category", HeaderName: "Category", MinWidth: 120, Type: grid.TypeStatus},
			{Field: "file_size", HeaderName: "Size (KB)", MinWidth: 100, Align: "right"},
			{Field: "uploaded_by_name", HeaderName: "Uploaded By", MinWidth: 120},
			{Field: "branch_name", HeaderName: "Branch", MinWidth: 120},
			{Field: "uploaded_at", HeaderName: "Uploaded", MinWidth: 120, Type: grid.TypeDateTime},
			{Field: "approval_status", HeaderName: "Status", MinWidth: 100, Type: grid.TypeStatus},
		},
	},
	"Audit_Logs": {
		Title: "Audit Logs",
		Columns: []grid.Column{
			{Field: "timestamp", HeaderName: "Timestamp", MinWidth: 150, Type: grid.TypeDateTime},
			{Field: "user_name", HeaderName: "User", MinWidth: 120},
			{Field: "action", HeaderName: "Action", MinWidth: 100, Type: grid.TypeStatus},
			{Field: "table_name", HeaderName: "Table", MinWidth: 120},
			{Field: "record_id", HeaderName: "Record ID", MinWidth: 120},
			{Field: "changes", HeaderName: "Changes", MinWidth: 200},
			{Field: "ip_address", HeaderName: "IP Address", MinWidth: 120},
		},
	},
}

// Get looks a table up by exact name. Unknown tables fall back to a
// minimal identity + creation-timestamp config titled by the requested
// name; this lookup never fails.
func Get(table string) Config {
	if cfg, ok := tableConfigs[table]; ok {
		return cfg
	}
	return Config{
		Title: table,
		Columns: []grid.Column{
			{Field: "id", HeaderName: "ID", MinWidth: 100},
			{Field: "created_at", HeaderName: "Created", MinWidth: 120, Type: grid.TypeDateTime},
		},
	}
}

// AvailableTables lists every configured table name in stable order.
func AvailableTables() []string {
	names := make([]string, 0, len(tableConfigs))
	for name := range tableConfigs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
