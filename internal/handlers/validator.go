package handlers

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface. Decimal amounts are validated by numeric value, so tags like
// required and gt=0 apply to them directly.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator used by the expense API.
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return &CustomValidator{validator: v}
}

func decimalValue(field reflect.Value) interface{} {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		value, _ := amount.Float64()
		return value
	}
	return nil
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
