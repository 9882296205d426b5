package recordstore

import "testing"

func TestForeignKey(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want interface{}
	}{
		{"scalar value", Record{"sale_id": "s1"}, "s1"},
		{"single element array", Record{"sale_id": []interface{}{"s1"}}, "s1"},
		{"multi element array uses first", Record{"sale_id": []interface{}{"s1", "s2"}}, "s1"},
		{"empty array", Record{"sale_id": []interface{}{}}, nil},
		{"missing field", Record{}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.ForeignKey("sale_id"); got != tc.want {
				t.Fatalf("ForeignKey = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"hello", "hello"},
		{true, "true"},
		{false, "false"},
		{42.0, "42"},
		{42.5, "42.5"},
		{7, "7"},
		{[]interface{}{"a", "b"}, "a,b"},
		{[]interface{}{1.0, 2.0}, "1,2"},
		{[]string{"x", "y"}, "x,y"},
	}
	for _, tc := range tests {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRecordAccessors(t *testing.T) {
	r := Record{"id": "r1", "amount": "1,200.50", "name": "Thing"}
	if r.ID() != "r1" {
		t.Fatalf("ID = %q", r.ID())
	}
	if r.Number("amount") != 1200.50 {
		t.Fatalf("Number = %v", r.Number("amount"))
	}
	if r.String("name") != "Thing" {
		t.Fatalf("String = %q", r.String("name"))
	}
	if r.Field("missing") != nil {
		t.Fatal("missing field not nil")
	}
}

func TestClone(t *testing.T) {
	r := Record{"id": "1", "x": "y"}
	c := r.Clone()
	c["x"] = "changed"
	if r["x"] != "y" {
		t.Fatal("clone mutated original")
	}
}
