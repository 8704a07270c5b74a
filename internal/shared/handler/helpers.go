package handler

import (
	"context"
	"errors"
	"net/http"

	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/middleware"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateLoanRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindJSON(obj))
}

// BindQuery parses and validates query string parameters
func BindQuery(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindQuery(obj))
}

func bind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
	} else {
		// JSON parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError sends an error response with logging
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	c.JSON(errResp.Status, errResp)
}

// RespondServiceError maps a service error to its registered response.
// Unknown errors become RequestTimeout once the deadline passed, InternalServerError otherwise.
//
// Usage:
//
//	if err := service.DoSomething(ctx); err != nil {
//	    handler.RespondServiceError(c, err)
//	    return
//	}
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || middleware.IsTimeout(c) {
		RespondError(c, err, sharedError.RequestTimeout)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}
