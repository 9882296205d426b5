package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"KabisaBizSuite/internal/recordstore"
)

func TestVerifyLinkage(t *testing.T) {
	parents := []recordstore.Record{{"id": "s1"}, {"id": "s2"}}
	children := []recordstore.Record{
		{"sale_id": "s1"},
		{"sale_id": "missing"},
	}
	got := VerifyLinkage(parents, children, "id", "sale_id")
	assert.Equal(t, 2, got.ParentCount)
	assert.Equal(t, 2, got.ChildCount)
	assert.Equal(t, 1, got.LinkedCount)
	assert.Equal(t, "50.0%", got.LinkageRate)
}

func TestVerifyLinkageArrayForeignKeyUsesFirstElement(t *testing.T) {
	parents := []recordstore.Record{{"id": "o1"}}
	children := []recordstore.Record{
		{"order_id": []interface{}{"o1", "o2"}},
		{"order_id": []interface{}{}},
	}
	got := VerifyLinkage(parents, children, "id", "order_id")
	assert.Equal(t, 1, got.LinkedCount)
}

func TestVerifyLinkageNoChildren(t *testing.T) {
	got := VerifyLinkage([]recordstore.Record{{"id": "p"}}, nil, "id", "parent_id")
	assert.Equal(t, "0%", got.LinkageRate)
}

func TestTotalRevenueExcludesUnpaidInvoices(t *testing.T) {
	sales := []recordstore.Record{{"total_amount": 100.0}}
	trips := []recordstore.Record{{"amount_charged": 25.0}}
	invoices := []recordstore.Record{
		{"status": "paid", "amount_paid": 50.0},
		{"status": "pending", "amount_paid": 500.0},
		{"status": "Paid", "amount_paid": 500.0}, // status match is exact
	}
	got := TotalRevenue(sales, trips, invoices)
	assert.Equal(t, 100.0, got.Sales)
	assert.Equal(t, 25.0, got.Logistics)
	assert.Equal(t, 50.0, got.Invoices)
	assert.Equal(t, 175.0, got.Total)
}

func TestTotalRevenuePaidInvoiceFallsBackToTotalAmount(t *testing.T) {
	invoices := []recordstore.Record{
		{"status": "paid", "total_amount": 80.0},
		{"status": "paid", "amount_paid": 0.0, "total_amount": 20.0},
	}
	got := TotalRevenue(nil, nil, invoices)
	assert.Equal(t, 100.0, got.Invoices)
}

func TestTotalExpenses(t *testing.T) {
	expenses := []recordstore.Record{{"amount": 40.0}, {"amount": "60"}}
	payroll := []recordstore.Record{{"net_salary": 30.0}}
	got := TotalExpenses(expenses, payroll)
	assert.Equal(t, 100.0, got.Operating)
	assert.Equal(t, 30.0, got.Payroll)
	assert.Equal(t, 130.0, got.Total)
}

func TestTotalAssetsVehicleFallbackChain(t *testing.T) {
	stock := []recordstore.Record{{"quantity_available": 10.0, "unit_price": 5.0}}
	vehicles := []recordstore.Record{
		{"current_value": 1000.0, "purchase_price": 2000.0},
		{"purchase_price": 500.0},
		{},
	}
	bank := []recordstore.Record{{"current_balance": 250.0}}
	got := TotalAssets(stock, vehicles, bank)
	assert.Equal(t, 50.0, got.Stock)
	assert.Equal(t, 1500.0, got.Vehicles)
	assert.Equal(t, 250.0, got.Cash)
	assert.Equal(t, 1800.0, got.Total)
}

func TestComputeWorkingCapital(t *testing.T) {
	sales := []recordstore.Record{
		{"payment_method": "credit", "total_amount": 100.0},
		{"payment_method": "cash", "total_amount": 999.0},
	}
	invoices := []recordstore.Record{
		{"status": "open", "balance_due": 40.0},
		{"status": "open", "total_amount": 60.0},
		{"status": "paid", "balance_due": 500.0},
	}
	orders := []recordstore.Record{
		{"status": "pending", "total_amount": 80.0, "amount_paid": 30.0},
		{"status": "completed", "total_amount": 999.0},
	}
	payroll := []recordstore.Record{
		{"payment_status": "pending", "net_salary": 20.0},
		{"payment_status": "paid", "net_salary": 999.0},
	}
	got := ComputeWorkingCapital(sales, invoices, orders, payroll)
	assert.Equal(t, 200.0, got.Receivables)
	assert.Equal(t, 70.0, got.Payables)
	assert.Equal(t, 130.0, got.WorkingCapital)
}

func TestVerifyDataLinkageEmptyDataset(t *testing.T) {
	got := VerifyDataLinkage(Dataset{})
	assert.Len(t, got.Tables, 15)
	for name, st := range got.Tables {
		assert.Equal(t, 0, st.Count, name)
		assert.Equal(t, "connected", st.Status, name)
	}
	assert.Equal(t, 0.0, got.Calculations.TotalRevenue.Total)
	assert.Equal(t, "0%", got.Relationships["salesWithItems"].LinkageRate)
}

func TestDataQualityCountsPositiveAmountsOnly(t *testing.T) {
	d := Dataset{
		Sales: []recordstore.Record{
			{"total_amount": 10.0},
			{"total_amount": 0.0},
			{"total_amount": -5.0},
			{},
		},
	}
	got := VerifyDataLinkage(d)
	assert.Equal(t, 1, got.DataQuality.SalesWithValidAmounts)
}
