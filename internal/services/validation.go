package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"recruitai/hr-dashboard/internal/models"
)

// ErrValidation marks input rejected before any call to the recruitment service.
var ErrValidation = errors.New("validation failed")

const (
	MessageAllFieldsRequired = "All fields are required."
	MessageFillAllFields     = "Please fill all fields"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("email_status", validateEmailStatus); err != nil {
		panic(fmt.Sprintf("services: %v", err))
	}
	return v
}

func validateEmailStatus(fl validator.FieldLevel) bool {
	return models.EmailStatus(fl.Field().String()).Valid()
}

// validateStruct wraps validator failures in ErrValidation and lists the
// offending fields.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
