package loan

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/mediatheque-api/internal/shared/context"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService *LoanService
}

func NewLoanHandler(loanService *LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var request CreateLoanRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.loanService.CreateLoan(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ReturnLoan accepts an empty body, meaning the item comes back today
func (h *LoanHandler) ReturnLoan(c *gin.Context) {
	loanID, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	var request ReturnLoanRequest
	if c.Request.ContentLength != 0 {
		if !handler.BindJSON(c, &request) {
			return
		}
	}

	response, err := h.loanService.ReturnLoan(c.Request.Context(), loanID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LoanHandler) GetLoan(c *gin.Context) {
	loanID, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	response, err := h.loanService.GetLoan(c.Request.Context(), loanID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LoanHandler) ListLoans(c *gin.Context) {
	var query ListLoansQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.loanService.ListLoans(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
