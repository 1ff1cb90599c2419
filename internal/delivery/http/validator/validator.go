// Package validator plugs go-playground validation into echo.
package validator

import (
	domainerrors "gazette/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo's Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the request-shape error.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	return nil
}
