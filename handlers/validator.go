package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/padraicbc/pokedex/apperror"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Request structs declare their shape with `validate` tags; failures
// surface as BadRequest before any store or upstream call runs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return nil
}
