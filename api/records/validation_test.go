package records

import (
	"testing"

	"KabisaBizSuite/internal/recordstore"
)

func TestValidateRecordPasses(t *testing.T) {
	data := recordstore.Record{
		"full_name": "Jane Wairimu",
		"email":     "jane@example.com",
		"salary":    50000.0,
	}
	if v := ValidateRecord("Employees", data); v != nil {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestValidateRecordReportsPerField(t *testing.T) {
	data := recordstore.Record{
		"full_name": "J",
		"email":     "not-an-email",
	}
	v := ValidateRecord("Employees", data)
	if v == nil {
		t.Fatal("expected violations")
	}
	if _, ok := v["full_name"]; !ok {
		t.Fatalf("full_name not flagged: %v", v)
	}
	if _, ok := v["email"]; !ok {
		t.Fatalf("email not flagged: %v", v)
	}
}

func TestValidateRecordRequiredAmount(t *testing.T) {
	v := ValidateRecord("Sales", recordstore.Record{"customer_name": "Ann"})
	if v == nil || v["total_amount"] == "" {
		t.Fatalf("missing amount not flagged: %v", v)
	}
	v = ValidateRecord("Sales", recordstore.Record{"customer_name": "Ann", "total_amount": "250.00"})
	if v != nil {
		t.Fatalf("string amount rejected: %v", v)
	}
}

func TestValidateRecordUnknownTableAcceptsAnything(t *testing.T) {
	if v := ValidateRecord("Mystery", recordstore.Record{}); v != nil {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestRowsToRecordsMapsHeaders(t *testing.T) {
	rows := [][]string{
		{"Customer", "total_amount", "Unmapped"},
		{"Alice", "100", "junk"},
		{"", "", ""},
	}
	got := rowsToRecords("Sales", rows)
	if len(got) != 1 {
		t.Fatalf("got %d records", len(got))
	}
	rec := got[0]
	if rec["customer_name"] != "Alice" {
		t.Fatalf("customer_name = %v", rec["customer_name"])
	}
	if rec["total_amount"] != "100" {
		t.Fatalf("total_amount = %v", rec["total_amount"])
	}
	if _, ok := rec["Unmapped"]; ok {
		t.Fatal("unmapped column survived")
	}
}

func TestRowsToRecordsHeaderOnly(t *testing.T) {
	if got := rowsToRecords("Sales", [][]string{{"Customer"}}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
