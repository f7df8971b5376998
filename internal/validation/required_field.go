package validation

import "math"

type RequiredField struct {
	field string
}

func NewRequiredField(field string) *RequiredField {
	return &RequiredField{field: field}
}

// Validate reports the field as missing when its value is falsy: absent,
// null, "", false, 0 or NaN. Empty arrays and objects count as present.
func (v *RequiredField) Validate(input map[string]any) error {
	if isFalsy(input[v.field]) {
		return &MissingFieldError{Field: v.field}
	}
	return nil
}

func isFalsy(value any) bool {
	switch x := value.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case int:
		return x == 0
	case int64:
		return x == 0
	case int32:
		return x == 0
	case uint:
		return x == 0
	case uint64:
		return x == 0
	}
	return false
}
