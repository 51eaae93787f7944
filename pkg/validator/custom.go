package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var plateRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,15}$`)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("slot", validateSlot)
	validate.RegisterValidation("plate", validatePlate)
}

func validateSlot(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= 1
}

func validatePlate(fl validator.FieldLevel) bool {
	return plateRe.MatchString(fl.Field().String())
}
