// Package validation holds the field-level checks run against a decoded
// request body before any use-case is invoked.
package validation

import "fmt"

// Validation inspects a decoded request body and returns the first problem
// it finds, or nil.
type Validation interface {
	Validate(input map[string]any) error
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field: %s", e.Field)
}

// Composite runs its children in order and stops at the first failure.
type Composite struct {
	validations []Validation
}

func NewComposite(validations ...Validation) *Composite {
	return &Composite{validations: validations}
}

func (c *Composite) Validate(input map[string]any) error {
	for _, v := range c.validations {
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}
