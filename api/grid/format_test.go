package grid

import "testing"

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"active", "success"},
		{"Active", "success"},
		{"COMPLETED", "success"},
		{"approved", "success"},
		{"pending", "warning"},
		{"Pending", "warning"},
		{"inactive", "default"},
		{"cancelled", "error"},
		{"REJECTED", "error"},
		{"something-new", "default"},
		{"", "default"},
	}
	for _, tc := range tests {
		if got := StatusColor(tc.status); got != tc.want {
			t.Fatalf("StatusColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestFormatCellNilRendersPlaceholder(t *testing.T) {
	for _, typ := range []string{"", TypeCurrency, TypeDate, TypeBoolean, TypeStatus, TypeArray} {
		cell := FormatCell(nil, Column{Field: "x", Type: typ})
		if cell.Value != NullPlaceholder {
			t.Fatalf("type %q: nil rendered as %q, want %q", typ, cell.Value, NullPlaceholder)
		}
	}
}

func TestFormatCellCurrency(t *testing.T) {
	cell := FormatCell(2500.5, Column{Field: "amount", Type: TypeCurrency})
	if cell.Value != "KSh 2,500.50" {
		t.Fatalf("currency cell = %q", cell.Value)
	}
}

func TestFormatCellBoolean(t *testing.T) {
	yes := FormatCell(true, Column{Field: "is_active", Type: TypeBoolean})
	if yes.Value != "Yes" || yes.Color != "success" {
		t.Fatalf("true cell = %+v", yes)
	}
	no := FormatCell(false, Column{Field: "is_active", Type: TypeBoolean})
	if no.Value != "No" || no.Color != "default" {
		t.Fatalf("false cell = %+v", no)
	}
}

func TestFormatCellStatusCarriesColor(t *testing.T) {
	cell := FormatCell("Pending", Column{Field: "status", Type: TypeStatus})
	if cell.Value != "Pending" || cell.Color != "warning" {
		t.Fatalf("status cell = %+v", cell)
	}
}

func TestFormatCellArrayJoins(t *testing.T) {
	cell := FormatCell([]interface{}{"a", "b", "c"}, Column{Field: "tags", Type: TypeArray})
	if cell.Value != "a, b, c" {
		t.Fatalf("array cell = %q", cell.Value)
	}
}

func TestFormatCellDate(t *testing.T) {
	cell := FormatCell("2026-01-05T08:00:00Z", Column{Field: "sale_date", Type: TypeDate})
	if cell.Value != "2026-01-05" {
		t.Fatalf("date cell = %q", cell.Value)
	}
}

func TestFormatCellDefaultStringifies(t *testing.T) {
	cell := FormatCell(42.0, Column{Field: "qty"})
	if cell.Value != "42" {
		t.Fatalf("default cell = %q", cell.Value)
	}
}
