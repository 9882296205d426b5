// Package finance computes the cross-table financial rollups: linkage
// verification between parent and child tables, revenue/expense/asset
// totals, working capital, and the operating dashboard.
package finance

import (
	"fmt"

	"KabisaBizSuite/internal/format"
	"KabisaBizSuite/internal/recordstore"
)

// Dataset is every table feeding the verification report. Missing tables
// are treated as empty, never as an error.
type Dataset struct {
	Sales           []recordstore.Record
	Expenses        []recordstore.Record
	Payroll         []recordstore.Record
	Orders          []recordstore.Record
	Employees       []recordstore.Record
	Invoices        []recordstore.Record
	Stock           []recordstore.Record
	Vehicles        []recordstore.Record
	Trips           []recordstore.Record
	Branches        []recordstore.Record
	SaleItems       []recordstore.Record
	OrderItems      []recordstore.Record
	StockMovements  []recordstore.Record
	BankAccounts    []recordstore.Record
	ChartOfAccounts []recordstore.Record
}

type TableStatus struct {
	Count  int    `json:"count"`
	Status string `json:"status"`
}

// Linkage reports how many child rows reference an existing parent row.
type Linkage struct {
	ParentCount int    `json:"parentCount"`
	ChildCount  int    `json:"childCount"`
	LinkedCount int    `json:"linkedCount"`
	LinkageRate string `json:"linkageRate"`
}

type RevenueTotals struct {
	Sales     float64 `json:"sales"`
	Logistics float64 `json:"logistics"`
	Invoices  float64 `json:"invoices"`
	Total     float64 `json:"total"`
}

type ExpenseTotals struct {
	Operating float64 `json:"operating"`
	Payroll   float64 `json:"payroll"`
	Total     float64 `json:"total"`
}

type AssetTotals struct {
	Stock    float64 `json:"stock"`
	Vehicles float64 `json:"vehicles"`
	Cash     float64 `json:"cash"`
	Total    float64 `json:"total"`
}

type WorkingCapital struct {
	Receivables    float64 `json:"receivables"`
	Payables       float64 `json:"payables"`
	WorkingCapital float64 `json:"workingCapital"`
}

type Calculations struct {
	TotalRevenue   RevenueTotals  `json:"totalRevenue"`
	TotalExpenses  ExpenseTotals  `json:"totalExpenses"`
	TotalAssets    AssetTotals    `json:"totalAssets"`
	WorkingCapital WorkingCapital `json:"workingCapital"`
}

type DataQuality struct {
	SalesWithValidAmounts    int `json:"salesWithValidAmounts"`
	ExpensesWithValidAmounts int `json:"expensesWithValidAmounts"`
	StockWithValidPrices     int `json:"stockWithValidPrices"`
	TripsWithValidCharges    int `json:"tripsWithValidCharges"`
}

// Verification is the full linkage report.
type Verification struct {
	Tables        map[string]TableStatus `json:"tables"`
	Relationships map[string]Linkage     `json:"relationships"`
	Calculations  Calculations           `json:"calculations"`
	DataQuality   DataQuality            `json:"dataQuality"`
}

// VerifyDataLinkage builds the full verification report over a snapshot of
// every table. Empty tables report zero counts with status "connected";
// the report itself never fails.
func VerifyDataLinkage(d Dataset) Verification {
	return Verification{
		Tables: map[string]TableStatus{
			"sales":           {Count: len(d.Sales), Status: "connected"},
			"expenses":        {Count: len(d.Expenses), Status: "connected"},
			"payroll":         {Count: len(d.Payroll), Status: "connected"},
			"orders":          {Count: len(d.Orders), Status: "connected"},
			"employees":       {Count: len(d.Employees), Status: "connected"},
			"invoices":        {Count: len(d.Invoices), Status: "connected"},
			"stock":           {Count: len(d.Stock), Status: "connected"},
			"vehicles":        {Count: len(d.Vehicles), Status: "connected"},
			"trips":           {Count: len(d.Trips), Status: "connected"},
			"branches":        {Count: len(d.Branches), Status: "connected"},
			"saleItems":       {Count: len(d.SaleItems), Status: "connected"},
			"orderItems":      {Count: len(d.OrderItems), Status: "connected"},
			"stockMovements":  {Count: len(d.StockMovements), Status: "connected"},
			"bankAccounts":    {Count: len(d.BankAccounts), Status: "connected"},
			"chartOfAccounts": {Count: len(d.ChartOfAccounts), Status: "connected"},
		},
		Relationships: map[string]Linkage{
			"salesWithItems":       VerifyLinkage(d.Sales, d.SaleItems, "id", "sale_id"),
			"ordersWithItems":      VerifyLinkage(d.Orders, d.OrderItems, "id", "order_id"),
			"employeesWithPayroll": VerifyLinkage(d.Employees, d.Payroll, "id", "employee_id"),
			"vehiclesWithTrips":    VerifyLinkage(d.Vehicles, d.Trips, "plate_number", "vehicle_plate_number"),
			"stockWithMovements":   VerifyLinkage(d.Stock, d.StockMovements, "product_name", "product_name"),
		},
		Calculations: Calculations{
			TotalRevenue:   TotalRevenue(d.Sales, d.Trips, d.Invoices),
			TotalExpenses:  TotalExpenses(d.Expenses, d.Payroll),
			TotalAssets:    TotalAssets(d.Stock, d.Vehicles, d.BankAccounts),
			WorkingCapital: ComputeWorkingCapital(d.Sales, d.Invoices, d.Orders, d.Payroll),
		},
		DataQuality: DataQuality{
			SalesWithValidAmounts:    countPositive(d.Sales, "total_amount"),
			ExpensesWithValidAmounts: countPositive(d.Expenses, "amount"),
			StockWithValidPrices:     countPositive(d.Stock, "unit_price"),
			TripsWithValidCharges:    countPositive(d.Trips, "amount_charged"),
		},
	}
}

// VerifyLinkage checks child rows against the parent key set. A child
// foreign key stored as an array counts via its first element only; the
// reverse direction is deliberately not checked.
func VerifyLinkage(parents, children []recordstore.Record, parentKey, childKey string) Linkage {
	parentIDs := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		parentIDs[recordstore.Stringify(p[parentKey])] = struct{}{}
	}

	linked := 0
	for _, c := range children {
		v := c.ForeignKey(childKey)
		if v == nil {
			continue
		}
		if _, ok := parentIDs[recordstore.Stringify(v)]; ok {
			linked++
		}
	}

	rate := "0%"
	if len(children) > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(linked)/float64(len(children))*100)
	}
	return Linkage{
		ParentCount: len(parents),
		ChildCount:  len(children),
		LinkedCount: linked,
		LinkageRate: rate,
	}
}

// TotalRevenue sums sales, trip charges, and paid invoices. Only invoices
// whose status is exactly "paid" count, using amount_paid when it is a
// nonzero number and falling back to total_amount otherwise.
func TotalRevenue(sales, trips, invoices []recordstore.Record) RevenueTotals {
	var salesRevenue, tripRevenue, invoiceRevenue float64
	for _, s := range sales {
		salesRevenue += format.ParseNumber(s["total_amount"])
	}
	for _, t := range trips {
		tripRevenue += format.ParseNumber(t["amount_charged"])
	}
	for _, inv := range invoices {
		if inv["status"] != "paid" {
			continue
		}
		amount := format.ParseNumber(inv["amount_paid"])
		if amount == 0 {
			amount = format.ParseNumber(inv["total_amount"])
		}
		invoiceRevenue += amount
	}
	return RevenueTotals{
		Sales:     salesRevenue,
		Logistics: tripRevenue,
		Invoices:  invoiceRevenue,
		Total:     salesRevenue + tripRevenue + invoiceRevenue,
	}
}

// TotalExpenses sums operating expenses and net payroll.
func TotalExpenses(expenses, payroll []recordstore.Record) ExpenseTotals {
	var operating, payrollTotal float64
	for _, e := range expenses {
		operating += format.ParseNumber(e["amount"])
	}
	for _, p := range payroll {
		payrollTotal += format.ParseNumber(p["net_salary"])
	}
	return ExpenseTotals{
		Operating: operating,
		Payroll:   payrollTotal,
		Total:     operating + payrollTotal,
	}
}

// TotalAssets values stock at quantity times unit price, vehicles at
// current value falling back to purchase price, and cash at bank balances.
func TotalAssets(stock, vehicles, bankAccounts []recordstore.Record) AssetTotals {
	var stockValue, vehicleValue, cashValue float64
	for _, item := range stock {
		stockValue += format.ParseNumber(item["quantity_available"]) * format.ParseNumber(item["unit_price"])
	}
	for _, v := range vehicles {
		value := format.ParseNumber(v["current_value"])
		if value == 0 {
			value = format.ParseNumber(v["purchase_price"])
		}
		vehicleValue += value
	}
	for _, acct := range bankAccounts {
		cashValue += format.ParseNumber(acct["current_balance"])
	}
	return AssetTotals{
		Stock:    stockValue,
		Vehicles: vehicleValue,
		Cash:     cashValue,
		Total:    stockValue + vehicleValue + cashValue,
	}
}

// ComputeWorkingCapital nets receivables (credit sales plus unpaid
// invoices) against payables (open order balances plus pending payroll).
func ComputeWorkingCapital(sales, invoices, orders, payroll []recordstore.Record) WorkingCapital {
	var receivables float64
	for _, s := range sales {
		if s["payment_method"] == "credit" {
			receivables += format.ParseNumber(s["total_amount"])
		}
	}
	for _, inv := range invoices {
		if inv["status"] == "paid" {
			continue
		}
		due := format.ParseNumber(inv["balance_due"])
		if due == 0 {
			due = format.ParseNumber(inv["total_amount"])
		}
		receivables += due
	}

	var payables float64
	for _, o := range orders {
		if o["status"] == "completed" {
			continue
		}
		payables += format.ParseNumber(o["total_amount"]) - format.ParseNumber(o["amount_paid"])
	}
	for _, p := range payroll {
		if p["payment_status"] == "pending" {
			payables += format.ParseNumber(p["net_salary"])
		}
	}

	return WorkingCapital{
		Receivables:    receivables,
		Payables:       payables,
		WorkingCapital: receivables - payables,
	}
}

func countPositive(rows []recordstore.Record, field string) int {
	n := 0
	for _, r := range rows {
		if format.ParseNumber(r[field]) > 0 {
			n++
		}
	}
	return n
}
