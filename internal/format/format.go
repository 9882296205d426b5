package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"KabisaBizSuite/internal/config"

	"github.com/shopspring/decimal"
)

// Currency renders any value as "KSh 1,234.50". Values that do not parse
// as a number are treated as zero.
func Currency(v interface{}) string {
	d := toDecimal(v)
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])
	out := grouped + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return config.CurrencyPrefix + " " + out
}

// ParseNumber parses a loose record value as float64, substituting 0 on
// absence or failure.
func ParseNumber(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date renders the date part of a date/datetime string; unparseable input
// is passed through untouched.
func Date(v interface{}) string {
	t, raw, ok := parseTime(v)
	if !ok {
		return raw
	}
	return t.Format("2006-01-02")
}

// DateTime renders date plus time.
func DateTime(v interface{}) string {
	t, raw, ok := parseTime(v)
	if !ok {
		return raw
	}
	return t.Format("2006-01-02 15:04:05")
}

// FileSize renders a byte count as "1.5 KB" style, two decimals max with
// trailing zeros trimmed.
func FileSize(v interface{}) string {
	bytes := ParseNumber(v)
	if bytes <= 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(bytes) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	val := bytes / math.Pow(1024, float64(i))
	s := strconv.FormatFloat(val, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + " " + sizes[i]
}

func toDecimal(v interface{}) decimal.Decimal {
	switch t := v.(type) {
	case decimal.Decimal:
		return t
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		f := ParseNumber(v)
		return decimal.NewFromFloat(f)
	}
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func parseTime(v interface{}) (time.Time, string, bool) {
	var raw string
	switch t := v.(type) {
	case time.Time:
		return t, "", true
	case string:
		raw = t
	default:
		raw = fmt.Sprint(v)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, raw, true
		}
	}
	return time.Time{}, raw, false
}
