package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherview.app/pkg/validation"
)

// validateViewID accepts canonical UUID strings only
func validateViewID(fl validator.FieldLevel) bool {
	return validation.IsValidViewID(fl.Field().String())
}

// validateUnits accepts the two unit systems the provider understands
func validateUnits(fl validator.FieldLevel) bool {
	return validation.IsValidUnitSystem(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on gin's validator.
// Registering twice replaces the previous functions.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("viewid", validateViewID); err != nil {
		return err
	}
	return v.RegisterValidation("units", validateUnits)
}
