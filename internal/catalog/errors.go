package catalog

import (
	"net/http"

	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
)

const (
	mediaNotFound    = "MEDIA_NOT_FOUND"    // errInfo
	invalidMediaType = "INVALID_MEDIA_TYPE" // errInfo
)

var (
	ErrMediaNotFound    = sharedError.NewDomainError(mediaNotFound)
	ErrInvalidMediaType = sharedError.NewDomainError(invalidMediaType)
)

func init() {
	sharedError.RegisterDomainErrorResponse(mediaNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEDIA-001",
		Message: "Media not found.",
	})

	sharedError.RegisterDomainErrorResponse(invalidMediaType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEDIA-002",
		Message: "Media type must be one of CD, DVD, BOOK, BOARD_GAME.",
		Field:   "type",
	})
}
