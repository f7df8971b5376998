package validation

import "reflect"

// FieldsEqual fails on field when its value differs from compareTo's.
type FieldsEqual struct {
	field     string
	compareTo string
}

func NewFieldsEqual(field, compareTo string) *FieldsEqual {
	return &FieldsEqual{field: field, compareTo: compareTo}
}

func (v *FieldsEqual) Validate(input map[string]any) error {
	if !strictEqual(input[v.field], input[v.compareTo]) {
		return &InvalidFieldError{Field: v.field}
	}
	return nil
}

// strictEqual compares scalars by value. Decoded objects and arrays are
// never equal, even to an identical copy.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
