package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// only the first error is reported
	fieldErr := validationErrors[0]

	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(fieldErr)
	resp.Field = fieldErr.Field()
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "mediatype":
		return "Media type must be one of CD, DVD, BOOK, BOARD_GAME."
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)."
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}
