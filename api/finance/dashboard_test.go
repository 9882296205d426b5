package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"KabisaBizSuite/internal/recordstore"
)

func TestBuildOverviewMetrics(t *testing.T) {
	sales := []recordstore.Record{
		{"total_amount": 1000.0, "sale_date": "2026-02-01", "customer_name": "Alice"},
	}
	expenses := []recordstore.Record{
		{"amount": 100.0, "expense_date": "2026-02-02", "description": "Fuel"},
	}
	orders := []recordstore.Record{
		{"total_amount": 300.0, "amount_paid": 100.0},
		{"total_amount": 200.0, "amount_paid": 200.0},
	}
	payroll := []recordstore.Record{{"gross_pay": 150.0}}

	got := BuildOverview(sales, expenses, orders, payroll)

	assert.Equal(t, 1000.0, got.TotalRevenue)
	assert.Equal(t, 100.0, got.TotalExpenses)
	assert.Equal(t, 500.0, got.TotalCOGS)
	assert.Equal(t, 150.0, got.TotalPayroll)
	assert.Equal(t, 500.0, got.GrossProfit)
	assert.Equal(t, 250.0, got.NetProfit)
	assert.Equal(t, 25.0, got.ProfitMargin)
	assert.Equal(t, 1, got.OutstandingCount)
	assert.Equal(t, 200.0, got.OutstandingTotal)
}

func TestBuildOverviewZeroRevenueZeroMargin(t *testing.T) {
	got := BuildOverview(nil, []recordstore.Record{{"amount": 50.0}}, nil, nil)
	assert.Equal(t, 0.0, got.ProfitMargin)
	assert.Equal(t, -50.0, got.NetProfit)
}

func TestBuildOverviewBreakdownClampsNetProfit(t *testing.T) {
	got := BuildOverview(nil, []recordstore.Record{{"amount": 50.0}}, nil, nil)
	for _, slice := range got.ExpenseBreakdown {
		if slice.Name == "Net Profit" {
			assert.Equal(t, 0.0, slice.Value)
			return
		}
	}
	t.Fatal("no Net Profit slice")
}

func TestRecentTransactionsOrderAndSign(t *testing.T) {
	sales := []recordstore.Record{
		{"total_amount": 10.0, "sale_date": "2026-02-01", "customer_name": "Old Sale"},
		{"total_amount": 20.0, "sale_date": "2026-02-05", "customer_name": "New Sale"},
	}
	expenses := []recordstore.Record{
		{"amount": 5.0, "expense_date": "2026-02-03", "description": "Mid Expense"},
	}
	got := BuildOverview(sales, expenses, nil, nil).RecentTransactions

	assert.Len(t, got, 3)
	assert.Equal(t, "New Sale", got[0].Description)
	assert.Equal(t, "Mid Expense", got[1].Description)
	assert.Equal(t, "Old Sale", got[2].Description)
	assert.Equal(t, -5.0, got[1].Amount)
	assert.Equal(t, "Expense", got[1].Type)
	assert.Equal(t, "Income", got[0].Type)
}

func TestRecentTransactionsCapsAtTen(t *testing.T) {
	sales := make([]recordstore.Record, 8)
	for i := range sales {
		sales[i] = recordstore.Record{"total_amount": 1.0, "sale_date": "2026-01-10"}
	}
	expenses := make([]recordstore.Record, 8)
	for i := range expenses {
		expenses[i] = recordstore.Record{"amount": 1.0, "expense_date": "2026-01-11"}
	}
	got := BuildOverview(sales, expenses, nil, nil).RecentTransactions
	// only the last five of each side feed the list
	assert.Len(t, got, 10)
}
