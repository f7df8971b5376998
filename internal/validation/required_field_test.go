package validation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ErlanBelekov/superpoll-api/internal/validation"
)

func TestRequiredField_Falsy_ReturnsMissingField(t *testing.T) {
	cases := map[string]map[string]any{
		"absent":       {},
		"nil":          {"name": nil},
		"empty string": {"name": ""},
		"false":        {"name": false},
		"zero":         {"name": float64(0)},
		"zero int":     {"name": 0},
		"NaN":          {"name": math.NaN()},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			err := validation.NewRequiredField("name").Validate(input)
			var missing *validation.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("got %v, want MissingFieldError", err)
			}
			if missing.Field != "name" {
				t.Errorf("field = %q, want name", missing.Field)
			}
		})
	}
}

func TestRequiredField_Truthy_ReturnsNil(t *testing.T) {
	cases := map[string]any{
		"string":      "x",
		"true":        true,
		"number":      float64(1),
		"empty array": []any{},
		"object":      map[string]any{},
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			if err := validation.NewRequiredField("name").Validate(map[string]any{"name": value}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
