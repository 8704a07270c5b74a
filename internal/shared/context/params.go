package context

import (
	"net/http"
	"strconv"

	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"

	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// GetUintParam parses a positive numeric path parameter
func GetUintParam(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint32(id), true
}

// RequireUintParam retrieves a numeric path parameter from the Gin context.
// If the parameter is missing or malformed, a validation error response is sent.
// Returns the id and true if valid, 0 and false otherwise (response already sent).
func RequireUintParam(c *gin.Context, name string) (uint32, bool) {
	id, ok := GetUintParam(c, name)
	if !ok {
		resp := sharedError.ValidationFailed
		resp.Field = name
		resp.Message = "Identifier must be a positive number."
		c.JSON(http.StatusBadRequest, resp)
		c.Abort()
		logger.FromContext(c.Request.Context()).Warn("invalid path parameter", "param", name, "value", c.Param(name))
		return 0, false
	}
	return id, true
}
