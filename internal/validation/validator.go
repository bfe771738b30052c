package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

// New builds the validator. enums maps vocabulary names to their closed
// value sets, consumed by the `enum=<name>` tag; several enum labels contain
// commas, which rules out oneof tags.
func New(enums map[string][]string) *Validator {
	v := validator.New()

	// Report violations under the JSON field name so error paths match what
	// the client actually sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	phoneRegex := regexp.MustCompile(`^\+?[0-9][0-9 ().-]{8,18}[0-9]$`)
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		values, ok := enums[fl.Param()]
		if !ok {
			return false
		}
		candidate, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		for _, value := range values {
			if value == candidate {
				return true
			}
		}
		return false
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
