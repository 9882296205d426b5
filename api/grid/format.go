package grid

import (
	"strings"

	"KabisaBizSuite/internal/format"
	"KabisaBizSuite/internal/recordstore"
)

// Semantic column types understood by the cell formatter.
const (
	TypeCurrency = "currency"
	TypeDate     = "date"
	TypeDateTime = "datetime"
	TypeBoolean  = "boolean"
	TypeStatus   = "status"
	TypeArray    = "array"
)

// Placeholder shown for null/missing cell values regardless of type.
const NullPlaceholder = "-"

// statusColors is the fixed status → badge color table, matched
// case-insensitively. Unknown statuses fall back to the neutral default.
var statusColors = map[string]string{
	"active":    "success",
	"completed": "success",
	"approved":  "success",
	"pending":   "warning",
	"inactive":  "default",
	"cancelled": "error",
	"rejected":  "error",
}

// StatusColor resolves a status value to its badge color.
func StatusColor(status string) string {
	if color, ok := statusColors[strings.ToLower(status)]; ok {
		return color
	}
	return "default"
}

// Cell is one rendered grid cell: the display value plus a badge color for
// boolean and status columns.
type Cell struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// FormatCell renders a raw record value according to the column's semantic
// type. It never fails: missing values render as the placeholder dash and
// unknown types fall back to plain stringification.
func FormatCell(value interface{}, col Column) Cell {
	cell := Cell{Field: col.Field}
	if value == nil {
		cell.Value = NullPlaceholder
		return cell
	}

	switch col.Type {
	case TypeCurrency:
		cell.Value = format.Currency(value)
	case TypeDate:
		cell.Value = format.Date(value)
	case TypeDateTime:
		cell.Value = format.DateTime(value)
	case TypeBoolean:
		if truthy(value) {
			cell.Value = "Yes"
			cell.Color = "success"
		} else {
			cell.Value = "No"
			cell.Color = "default"
		}
	case TypeStatus:
		s := recordstore.Stringify(value)
		cell.Value = s
		cell.Color = StatusColor(s)
	case TypeArray:
		if arr, ok := value.([]interface{}); ok {
			parts := make([]string, 0, len(arr))
			for _, e := range arr {
				parts = append(parts, recordstore.Stringify(e))
			}
			cell.Value = strings.Join(parts, ", ")
		} else {
			cell.Value = recordstore.Stringify(value)
		}
	default:
		cell.Value = recordstore.Stringify(value)
	}
	return cell
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case float64:
		return t != 0
	case int:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}
