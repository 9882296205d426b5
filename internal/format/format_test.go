package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"zero", 0, "KSh 0.00"},
		{"nil treated as zero", nil, "KSh 0.00"},
		{"plain float", 1234.5, "KSh 1,234.50"},
		{"large value groups every three digits", 1234567.891, "KSh 1,234,567.89"},
		{"negative keeps grouping", -1234.5, "KSh -1,234.50"},
		{"string number", "99.9", "KSh 99.90"},
		{"string with separators", "1,234.50", "KSh 1,234.50"},
		{"non numeric string", "abc", "KSh 0.00"},
		{"small value no grouping", 999.999, "KSh 1,000.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Currency(tc.in); got != tc.want {
				t.Fatalf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCurrencyAlwaysTwoDecimals(t *testing.T) {
	for _, v := range []interface{}{0, 1, 10.5, 123456, "7", -3.14159} {
		got := Currency(v)
		if len(got) < 3 || got[len(got)-3] != '.' {
			t.Fatalf("Currency(%v) = %q, want exactly two decimal places", v, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
	}{
		{nil, 0},
		{42.5, 42.5},
		{7, 7},
		{"1,250.75", 1250.75},
		{" 10 ", 10},
		{"not a number", 0},
		{true, 1},
		{false, 0},
	}
	for _, tc := range tests {
		if got := ParseNumber(tc.in); got != tc.want {
			t.Fatalf("ParseNumber(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"2026-03-15T10:30:00Z", "2026-03-15"},
		{"2026-03-15 10:30:00", "2026-03-15"},
		{"2026-03-15", "2026-03-15"},
		{"yesterday", "yesterday"},
	}
	for _, tc := range tests {
		if got := Date(tc.in); got != tc.want {
			t.Fatalf("Date(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateTime(t *testing.T) {
	if got := DateTime("2026-03-15T10:30:45Z"); got != "2026-03-15 10:30:45" {
		t.Fatalf("DateTime = %q", got)
	}
}

func TestFileSize(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2621440, "2.5 MB"},
		{5368709120, "5 GB"},
	}
	for _, tc := range tests {
		if got := FileSize(tc.in); got != tc.want {
			t.Fatalf("FileSize(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
