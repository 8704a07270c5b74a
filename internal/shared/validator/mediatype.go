package validator

import (
	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/go-playground/validator/v10"
)

// ValidateMediaType accepts any catalog variant name, board games included.
// Whether a variant may be lent is a business rule decided by the loan service.
func ValidateMediaType(fl validator.FieldLevel) bool {
	_, ok := model.ParseMediaType(fl.Field().String())
	return ok
}
