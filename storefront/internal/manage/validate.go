package manage

import (
	"fmt"
	"strings"
)

// Violation is one failed constraint, keyed by form field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "invalid restaurant form: " + strings.Join(parts, "; ")
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
)

// constraint describes one scalar field of the form.
type constraint struct {
	field       string
	kind        fieldKind
	min         *float64
	requiredMsg string
	invalidMsg  string
	minMsg      string
	value       func(Form) string
}

func floatPtr(v float64) *float64 { return &v }

var scalarConstraints = []constraint{
	{field: "restaurantName", kind: kindText, requiredMsg: "restaurant name is required", value: func(f Form) string { return f.RestaurantName }},
	{field: "city", kind: kindText, requiredMsg: "city is required", value: func(f Form) string { return f.City }},
	{field: "country", kind: kindText, requiredMsg: "country is required", value: func(f Form) string { return f.Country }},
	{
		field: "deliveryPrice", kind: kindNumber, min: floatPtr(0),
		requiredMsg: "delivery price is required", invalidMsg: "must be a valid number", minMsg: "must not be negative",
		value: func(f Form) string { return f.DeliveryPrice },
	},
	{
		field: "estimateDeliveryTime", kind: kindNumber, min: floatPtr(0),
		requiredMsg: "estimated delivery time is required", invalidMsg: "must be a valid number", minMsg: "must not be negative",
		value: func(f Form) string { return f.EstimateDeliveryTime },
	},
}

var menuItemPriceMin = 1.0

// refinements run after the per-field checks and may look at several fields.
var refinements = []func(Form) []Violation{
	func(f Form) []Violation {
		for _, c := range f.Cuisines {
			if strings.TrimSpace(c) != "" {
				return nil
			}
		}
		return []Violation{{Field: "cuisines", Message: "please select at least one item"}}
	},
	func(f Form) []Violation {
		var out []Violation
		for i, item := range f.MenuItems {
			if strings.TrimSpace(item.Name) == "" {
				out = append(out, Violation{Field: fmt.Sprintf("menuItems[%d].name", i), Message: "Name is required"})
			}
			if price, err := parseNumber(item.Price); err != nil || price < menuItemPriceMin {
				out = append(out, Violation{Field: fmt.Sprintf("menuItems[%d].price", i), Message: "number is required"})
			}
		}
		return out
	},
	func(f Form) []Violation {
		if strings.TrimSpace(f.ImageURL) != "" || (f.ImageFile != nil && len(f.ImageFile.Content) > 0) {
			return nil
		}
		return []Violation{{Field: "imageFile", Message: "Either image Url or image File must be provided"}}
	},
}

// Validate checks f against the constraint table. An empty result means the
// form may be submitted.
func Validate(f Form) []Violation {
	var violations []Violation
	for _, c := range scalarConstraints {
		if v, ok := c.check(f); !ok {
			violations = append(violations, v)
		}
	}
	for _, refine := range refinements {
		violations = append(violations, refine(f)...)
	}
	return violations
}

func (c constraint) check(f Form) (Violation, bool) {
	raw := strings.TrimSpace(c.value(f))
	if raw == "" {
		return Violation{Field: c.field, Message: c.requiredMsg}, false
	}
	if c.kind != kindNumber {
		return Violation{}, true
	}
	n, err := parseNumber(raw)
	if err != nil {
		return Violation{Field: c.field, Message: c.invalidMsg}, false
	}
	if c.min != nil && n < *c.min {
		return Violation{Field: c.field, Message: c.minMsg}, false
	}
	return Violation{}, true
}
