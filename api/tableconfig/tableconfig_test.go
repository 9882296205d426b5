package tableconfig

import (
	"testing"

	"KabisaBizSuite/api/grid"
)

func TestGetKnownTable(t *testing.T) {
	cfg := Get("Sales")
	if cfg.Title != "Sales Records" {
		t.Fatalf("title = %q", cfg.Title)
	}
	var amount *grid.Column
	for i := range cfg.Columns {
		if cfg.Columns[i].Field == "total_amount" {
			amount = &cfg.Columns[i]
		}
	}
	if amount == nil {
		t.Fatal("Sales config missing total_amount column")
	}
	if amount.Type != grid.TypeCurrency {
		t.Fatalf("total_amount type = %q", amount.Type)
	}
}

func TestGetUnknownTableFallsBackToDefault(t *testing.T) {
	cfg := Get("Mystery_Table")
	if cfg.Title != "Mystery_Table" {
		t.Fatalf("title = %q", cfg.Title)
	}
	if len(cfg.Columns) != 2 {
		t.Fatalf("default config has %d columns", len(cfg.Columns))
	}
	if cfg.Columns[0].Field != "id" || cfg.Columns[1].Field != "created_at" {
		t.Fatalf("default columns = %v", cfg.Columns)
	}
	if cfg.Columns[1].Type != grid.TypeDateTime {
		t.Fatalf("created_at type = %q", cfg.Columns[1].Type)
	}
}

func TestAvailableTablesSortedAndComplete(t *testing.T) {
	names := AvailableTables()
	if len(names) != 14 {
		t.Fatalf("got %d tables", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	cfgd := map[string]bool{}
	for _, n := range names {
		cfgd[n] = true
	}
	for _, want := range []string{"Employees", "Sales", "Stock", "Orders", "Payroll", "Documents", "Audit_Logs"} {
		if !cfgd[want] {
			t.Fatalf("missing table %q", want)
		}
	}
}
