package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var externalCodeRe = regexp.MustCompile(`^[A-Z]{3}-\d{5}$`)

// ExternalCode reports whether code has the PREFIX-NNNNN borrower format.
func ExternalCode(code string) bool {
	return externalCodeRe.MatchString(code)
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("extcode", func(fl validator.FieldLevel) bool {
		return ExternalCode(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
