package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	floaterrors "github.com/alexisbeaulieu97/floatinput/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColourPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

// validatorInstance returns the shared validator with the override rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("colour", func(fl validator.FieldLevel) bool {
			return IsColour(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsColour reports whether s is a hex colour (#RGB or #RRGGBB) or an ANSI
// colour index between 0 and 255.
func IsColour(s string) bool {
	if hexColourPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks the colour fields of the overrides. Numeric values are not
// range checked.
func Validate(path string, o *Overrides) error {
	if o == nil {
		return nil
	}

	err := validatorInstance().Struct(o)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return floaterrors.NewValidationError(path, "", err.Error(), err)
	}

	fe := ves[0]
	field := fieldPath(fe)
	msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(fe.Value()), fe.Tag())
	if fe.Tag() == "colour" {
		msg = fmt.Sprintf("%q is not a colour (want #RGB, #RRGGBB or 0-255)", fmt.Sprint(fe.Value()))
	}
	return floaterrors.NewValidationError(path, field, msg, err)
}

// fieldPath drops the root struct name from the validator namespace, leaving
// the YAML path of the field.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
