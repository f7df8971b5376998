package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EmailChecker decides whether a string is a well-formed e-mail address.
type EmailChecker interface {
	IsValid(email string) (bool, error)
}

type EmailFormat struct {
	field   string
	checker EmailChecker
}

func NewEmailFormat(field string, checker EmailChecker) *EmailFormat {
	return &EmailFormat{field: field, checker: checker}
}

// Validate hands the raw field value to the checker. Checker errors are
// returned as-is rather than turned into an InvalidFieldError.
func (v *EmailFormat) Validate(input map[string]any) error {
	ok, err := v.checker.IsValid(stringify(input[v.field]))
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidFieldError{Field: v.field}
	}
	return nil
}

// PlaygroundEmailChecker checks addresses with go-playground's "email" tag.
type PlaygroundEmailChecker struct {
	validate *validator.Validate
}

func NewPlaygroundEmailChecker() *PlaygroundEmailChecker {
	return &PlaygroundEmailChecker{validate: validator.New()}
}

func (c *PlaygroundEmailChecker) IsValid(email string) (bool, error) {
	err := c.validate.Var(email, "required,email")
	if err == nil {
		return true, nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return false, nil
	}
	return false, fmt.Errorf("check email: %w", err)
}

func stringify(value any) string {
	switch x := value.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
