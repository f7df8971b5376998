package validation_test

import (
	"errors"
	"testing"

	"github.com/ErlanBelekov/superpoll-api/internal/validation"
)

func validSignUp() map[string]any {
	return map[string]any{
		"name":                 "David",
		"email":                "d@x.com",
		"password":             "123",
		"passwordConfirmation": "123",
	}
}

func TestSignUp_Valid(t *testing.T) {
	v := validation.SignUp(validation.NewPlaygroundEmailChecker())
	if err := v.Validate(validSignUp()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignUp_ReportsFirstMissingField(t *testing.T) {
	v := validation.SignUp(validation.NewPlaygroundEmailChecker())
	input := validSignUp()
	delete(input, "email")
	delete(input, "passwordConfirmation")

	var missing *validation.MissingFieldError
	if err := v.Validate(input); !errors.As(err, &missing) || missing.Field != "email" {
		t.Fatalf("got %v, want missing email", err)
	}
}

func TestSignUp_ConfirmationMismatch(t *testing.T) {
	v := validation.SignUp(validation.NewPlaygroundEmailChecker())
	input := validSignUp()
	input["passwordConfirmation"] = "456"

	var invalid *validation.InvalidFieldError
	if err := v.Validate(input); !errors.As(err, &invalid) || invalid.Field != "passwordConfirmation" {
		t.Fatalf("got %v, want invalid passwordConfirmation", err)
	}
}

func TestSignUp_BadEmail(t *testing.T) {
	v := validation.SignUp(validation.NewPlaygroundEmailChecker())
	input := validSignUp()
	input["email"] = "not-an-email"

	var invalid *validation.InvalidFieldError
	if err := v.Validate(input); !errors.As(err, &invalid) || invalid.Field != "email" {
		t.Fatalf("got %v, want invalid email", err)
	}
}

func TestSignIn_MissingPassword(t *testing.T) {
	v := validation.SignIn(validation.NewPlaygroundEmailChecker())

	var missing *validation.MissingFieldError
	if err := v.Validate(map[string]any{"email": "d@x.com"}); !errors.As(err, &missing) || missing.Field != "password" {
		t.Fatalf("got %v, want missing password", err)
	}
}

func TestAddSurvey_RequiresQuestionAndAnswers(t *testing.T) {
	v := validation.AddSurvey()

	var missing *validation.MissingFieldError
	if err := v.Validate(map[string]any{"answers": []any{}}); !errors.As(err, &missing) || missing.Field != "question" {
		t.Fatalf("got %v, want missing question", err)
	}
	if err := v.Validate(map[string]any{"question": "q"}); !errors.As(err, &missing) || missing.Field != "answers" {
		t.Fatalf("got %v, want missing answers", err)
	}
	if err := v.Validate(map[string]any{"question": "q", "answers": []any{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
