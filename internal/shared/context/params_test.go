package context_test

import (
	"net/http"
	"testing"

	sharedContext "github.com/changhyeonkim/mediatheque-api/internal/shared/context"
	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireUintParam(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := sharedContext.RequireUintParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/items/42"})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":42}`, recorder.Body.String())

	for _, url := range []string{"/items/abc", "/items/0", "/items/-1"} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: url})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, url)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "id", errorResponse.Field)
	}
}
