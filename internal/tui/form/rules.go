package form

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Values are the demo form's field values checked by the validation rules.
type Values struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"omitempty,min=6"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	ruleMessages = map[string]string{
		"Name":     "Name is required",
		"Email":    "Invalid email address",
		"Password": "Password must be at least 6 characters",
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate returns an error message per failing field, keyed by struct field
// name. Untouched fields are filtered by the caller, not here.
func Validate(values Values) map[string]string {
	errs := make(map[string]string)
	err := validatorInstance().Struct(values)
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errs
	}
	for _, fe := range validationErrs {
		if msg, ok := ruleMessages[fe.StructField()]; ok {
			errs[fe.StructField()] = msg
		}
	}
	return errs
}
