package validation

import (
	"unicode/utf8"

	"blogql/internal/apperr"

	"github.com/go-playground/validator/v10"
)

const minFieldLength = 5

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// UserInput checks registration input. Unlike post input the checks fail one
// at a time, each as its own 422.
func (v *Validator) UserInput(email, password string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return apperr.Invalid("E-Mail is invalid.", nil)
	}

	if utf8.RuneCountInString(password) < minFieldLength {
		return apperr.Invalid("Password too short!", nil)
	}

	return nil
}

// PostInput checks title and content, accumulating every failure so the
// caller can surface all problems at once.
func (v *Validator) PostInput(title, content string) error {
	var errs []apperr.FieldError

	if utf8.RuneCountInString(title) < minFieldLength {
		errs = append(errs, apperr.FieldError{Message: "Title is invalid."})
	}
	if utf8.RuneCountInString(content) < minFieldLength {
		errs = append(errs, apperr.FieldError{Message: "Content is invalid."})
	}

	if len(errs) > 0 {
		return apperr.Invalid("Invalid input.", errs)
	}

	return nil
}
