package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"KabisaBizSuite/internal/format"
)

// Record is one row of a logical table: a flat field-name to value map as
// returned by the record store. Values are scalars, strings, bools, date
// strings, or arrays of scalars (links to other records).
type Record map[string]interface{}

// ID returns the record's identity field as a string, "" when absent.
func (r Record) ID() string {
	return Stringify(r["id"])
}

// Field returns the raw value for a field, nil when missing.
func (r Record) Field(name string) interface{} {
	return r[name]
}

// String returns the stringified value of a field, "" for nil/missing.
func (r Record) String(name string) string {
	return Stringify(r[name])
}

// Number parses a field as float64 with zero fallback.
func (r Record) Number(name string) float64 {
	return format.ParseNumber(r[name])
}

// ForeignKey normalizes a link value: foreign keys arrive either as a raw
// identifier or as a single-element array holding it. Arrays yield their
// first element; empty arrays yield nil.
func (r Record) ForeignKey(name string) interface{} {
	v := r[name]
	if arr, ok := v.([]interface{}); ok {
		if len(arr) == 0 {
			return nil
		}
		return arr[0]
	}
	return v
}

// Clone copies the record one level deep.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Stringify converts a loose record value to its canonical string form.
// Arrays join their elements with ",", nil becomes "".
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, Stringify(e))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}
