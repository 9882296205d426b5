package records

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"KabisaBizSuite/internal/recordstore"
)

var validate = validator.New()

// fieldRules holds the per-table validation tags applied to incoming
// create/update payloads. Fields without a rule pass through untouched;
// tables without rules accept anything.
var fieldRules = map[string]map[string]string{
	"Employees": {
		"full_name": "required,min=2",
		"email":     "required,email",
		"salary":    "omitempty,gte=0",
	},
	"Branches": {
		"branch_name": "required,min=2",
		"email":       "omitempty,email",
	},
	"Stock": {
		"product_name":       "required,min=2",
		"quantity_available": "omitempty,gte=0",
		"unit_price":         "omitempty,gte=0",
	},
	"Sales": {
		"customer_name": "required,min=2",
		"total_amount":  "required,gt=0",
	},
	"Expenses": {
		"category": "required",
		"amount":   "required,gt=0",
	},
	"Vehicles": {
		"plate_number": "required,min=4",
	},
	"Trips": {
		"vehicle_plate_number": "required",
		"amount_charged":       "omitempty,gte=0",
	},
	"Orders": {
		"supplier_name": "required,min=2",
		"total_amount":  "required,gt=0",
		"amount_paid":   "omitempty,gte=0",
	},
	"Payroll": {
		"employee_name": "required",
		"gross_salary":  "required,gt=0",
		"net_salary":    "required,gt=0",
	},
	"Documents": {
		"file_name": "required",
	},
}

// ValidateRecord checks one payload against the table's field rules and
// returns violations keyed by field name. A nil map means the payload is
// acceptable.
func ValidateRecord(table string, data recordstore.Record) map[string]string {
	rules, ok := fieldRules[table]
	if !ok {
		return nil
	}

	violations := make(map[string]string)
	for field, tag := range rules {
		value := data[field]
		// numbers arrive as strings from spreadsheet uploads
		if s, ok := value.(string); ok && s != "" && isNumericRule(tag) {
			var f float64
			if _, err := fmt.Sscanf(s, "%f", &f); err == nil {
				value = f
			}
		}
		if err := validate.Var(value, tag); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				violations[field] = verrs[0].Tag()
			} else {
				violations[field] = "invalid"
			}
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return violations
}

func isNumericRule(tag string) bool {
	switch tag {
	case "omitempty,gte=0", "required,gt=0", "omitempty,gt=0", "required,gte=0":
		return true
	}
	return false
}
