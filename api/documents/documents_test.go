package documents

import "testing"

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"invoices", "error"},
		{"receipts", "success"},
		{"delivery_notes", "info"},
		{"certificates", "warning"},
		{"contracts", "secondary"},
		{"reports", "primary"},
		{"general", "default"},
		{"unknown", "default"},
		{"", "default"},
	}
	for _, tc := range tests {
		if got := CategoryColor(tc.category); got != tc.want {
			t.Fatalf("CategoryColor(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestCategoriesMatchColorTable(t *testing.T) {
	for _, c := range Categories() {
		if _, ok := categoryColors[c]; !ok {
			t.Fatalf("category %q has no color", c)
		}
	}
	if len(Categories()) != len(categoryColors) {
		t.Fatalf("category list and color table out of sync")
	}
}
