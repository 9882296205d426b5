package finance

import (
	"net/http"
	"sort"

	"KabisaBizSuite/api"
	"KabisaBizSuite/api/constants"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/format"
	"KabisaBizSuite/internal/recordstore"
)

// Transaction is one line in the recent-activity feed. Expense amounts
// are negative so the feed nets correctly.
type Transaction struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Display     string  `json:"display"`
	Date        string  `json:"date"`
}

type BreakdownSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Overview is the finance dashboard payload: headline metrics, the
// expense breakdown, outstanding orders, and recent transactions.
type Overview struct {
	TotalRevenue       float64              `json:"total_revenue"`
	TotalExpenses      float64              `json:"total_expenses"`
	TotalCOGS          float64              `json:"total_cogs"`
	TotalPayroll       float64              `json:"total_payroll"`
	GrossProfit        float64              `json:"gross_profit"`
	NetProfit          float64              `json:"net_profit"`
	ProfitMargin       float64              `json:"profit_margin"`
	OutstandingCount   int                  `json:"outstanding_count"`
	OutstandingTotal   float64              `json:"outstanding_total"`
	ExpenseBreakdown   []BreakdownSlice     `json:"expense_breakdown"`
	RecentTransactions []Transaction        `json:"recent_transactions"`
	OutstandingOrders  []recordstore.Record `json:"outstanding_orders"`
}

// BuildOverview computes the dashboard from table snapshots. Revenue is
// all sales, cost of goods is all purchase orders, payroll uses gross pay.
func BuildOverview(sales, expenses, orders, payroll []recordstore.Record) Overview {
	var totalRevenue, totalExpenses, totalCOGS, totalPayroll float64
	for _, s := range sales {
		totalRevenue += format.ParseNumber(s["total_amount"])
	}
	for _, e := range expenses {
		totalExpenses += format.ParseNumber(e["amount"])
	}
	for _, o := range orders {
		totalCOGS += format.ParseNumber(o["total_amount"])
	}
	for _, p := range payroll {
		totalPayroll += format.ParseNumber(p["gross_pay"])
	}

	grossProfit := totalRevenue - totalCOGS
	netProfit := grossProfit - totalExpenses - totalPayroll
	margin := 0.0
	if totalRevenue > 0 {
		margin = netProfit / totalRevenue * 100
	}

	outstanding := make([]recordstore.Record, 0)
	var outstandingTotal float64
	for _, o := range orders {
		total := format.ParseNumber(o["total_amount"])
		paid := format.ParseNumber(o["amount_paid"])
		if total > paid {
			outstanding = append(outstanding, o)
			outstandingTotal += total - paid
		}
	}

	retained := netProfit
	if retained < 0 {
		retained = 0
	}
	breakdown := []BreakdownSlice{
		{Name: "Operating Expenses", Value: totalExpenses, Color: "#ff6b6b"},
		{Name: "Cost of Goods", Value: totalCOGS, Color: "#4ecdc4"},
		{Name: "Payroll", Value: totalPayroll, Color: "#45b7d1"},
		{Name: "Net Profit", Value: retained, Color: "#96ceb4"},
	}

	return Overview{
		TotalRevenue:       totalRevenue,
		TotalExpenses:      totalExpenses,
		TotalCOGS:          totalCOGS,
		TotalPayroll:       totalPayroll,
		GrossProfit:        grossProfit,
		NetProfit:          netProfit,
		ProfitMargin:       margin,
		OutstandingCount:   len(outstanding),
		OutstandingTotal:   outstandingTotal,
		ExpenseBreakdown:   breakdown,
		RecentTransactions: recentTransactions(sales, expenses),
		OutstandingOrders:  outstanding,
	}
}

// recentTransactions interleaves the five newest sales and expenses by
// date descending, capped at ten entries.
func recentTransactions(sales, expenses []recordstore.Record) []Transaction {
	txns := make([]Transaction, 0, 10)
	for _, s := range lastN(sales, 5) {
		amount := format.ParseNumber(s["total_amount"])
		txns = append(txns, Transaction{
			Type:        "Income",
			Description: transactionLabel(s, "customer_name"),
			Amount:      amount,
			Display:     format.Currency(amount),
			Date:        recordstore.Stringify(s["sale_date"]),
		})
	}
	for _, e := range lastN(expenses, 5) {
		amount := format.ParseNumber(e["amount"])
		txns = append(txns, Transaction{
			Type:        "Expense",
			Description: transactionLabel(e, "description"),
			Amount:      -amount,
			Display:     format.Currency(amount),
			Date:        recordstore.Stringify(e["expense_date"]),
		})
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
	if len(txns) > 10 {
		txns = txns[:10]
	}
	return txns
}

func lastN(rows []recordstore.Record, n int) []recordstore.Record {
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}

func transactionLabel(r recordstore.Record, field string) string {
	if v := recordstore.Stringify(r[field]); v != "" {
		return v
	}
	if v := recordstore.Stringify(r["description"]); v != "" {
		return v
	}
	return "Transaction"
}

// GetOverview serves the finance dashboard from cached table snapshots.
func GetOverview(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			api.RespondWithError(w, http.StatusMethodNotAllowed, constants.ErrMethodNotAllowed)
			return
		}
		ctx := r.Context()
		sales := tableOrEmpty(ctx, tc, "Sales")
		expenses := tableOrEmpty(ctx, tc, "Expenses")
		orders := tableOrEmpty(ctx, tc, "Orders")
		payroll := tableOrEmpty(ctx, tc, "Payroll")

		api.RespondWithPayload(w, true, "", BuildOverview(sales, expenses, orders, payroll))
	}
}

// GetVerification serves the full linkage report.
func GetVerification(tc *cache.TableCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			api.RespondWithError(w, http.StatusMethodNotAllowed, constants.ErrMethodNotAllowed)
			return
		}
		ctx := r.Context()
		d := Dataset{
			Sales:           tableOrEmpty(ctx, tc, "Sales"),
			Expenses:        tableOrEmpty(ctx, tc, "Expenses"),
			Payroll:         tableOrEmpty(ctx, tc, "Payroll"),
			Orders:          tableOrEmpty(ctx, tc, "Orders"),
			Employees:       tableOrEmpty(ctx, tc, "Employees"),
			Invoices:        tableOrEmpty(ctx, tc, "Invoices"),
			Stock:           tableOrEmpty(ctx, tc, "Stock"),
			Vehicles:        tableOrEmpty(ctx, tc, "Vehicles"),
			Trips:           tableOrEmpty(ctx, tc, "Trips"),
			Branches:        tableOrEmpty(ctx, tc, "Branches"),
			SaleItems:       tableOrEmpty(ctx, tc, "Sale_Items"),
			OrderItems:      tableOrEmpty(ctx, tc, "Order_Items"),
			StockMovements:  tableOrEmpty(ctx, tc, "Stock_Movements"),
			BankAccounts:    tableOrEmpty(ctx, tc, "Bank_Accounts"),
			ChartOfAccounts: tableOrEmpty(ctx, tc, "Chart_Of_Accounts"),
		}
		api.RespondWithPayload(w, true, "", VerifyDataLinkage(d))
	}
}
