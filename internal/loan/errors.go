package loan

import (
	"net/http"

	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
)

const (
	nonCirculatingItem  = "NON_CIRCULATING_ITEM"  // errInfo
	tooManyActiveLoans  = "TOO_MANY_ACTIVE_LOANS" // errInfo
	hasOverdueLoan      = "HAS_OVERDUE_LOAN"      // errInfo
	itemUnavailable     = "ITEM_UNAVAILABLE"      // errInfo
	alreadyReturned     = "ALREADY_RETURNED"      // errInfo
	loanNotFound        = "LOAN_NOT_FOUND"        // errInfo
	invalidReturnDate   = "INVALID_RETURN_DATE"   // errInfo
	mediaNotSelected    = "MEDIA_NOT_SELECTED"    // errInfo
	memberRequired      = "MEMBER_REQUIRED"       // errInfo
	returnDateRequired  = "RETURN_DATE_REQUIRED"  // errInfo
	returnDateMalformed = "RETURN_DATE_MALFORMED" // errInfo
)

var (
	ErrNonCirculatingItem = sharedError.NewDomainError(nonCirculatingItem)
	ErrTooManyActiveLoans = sharedError.NewDomainError(tooManyActiveLoans)
	ErrHasOverdueLoan     = sharedError.NewDomainError(hasOverdueLoan)
	ErrItemUnavailable    = sharedError.NewDomainError(itemUnavailable)
	ErrAlreadyReturned    = sharedError.NewDomainError(alreadyReturned)
	ErrLoanNotFound       = sharedError.NewDomainError(loanNotFound)
	ErrInvalidReturnDate  = sharedError.NewDomainError(invalidReturnDate)

	// field-level validation errors
	ErrMediaNotSelected    = sharedError.NewDomainError(mediaNotSelected)
	ErrMemberRequired      = sharedError.NewDomainError(memberRequired)
	ErrReturnDateRequired  = sharedError.NewDomainError(returnDateRequired)
	ErrReturnDateMalformed = sharedError.NewDomainError(returnDateMalformed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(nonCirculatingItem, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LOAN-001",
		Message: "Board games cannot be borrowed.",
	})

	sharedError.RegisterDomainErrorResponse(tooManyActiveLoans, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LOAN-002",
		Message: "This member already has the maximum number of loans in progress.",
	})

	sharedError.RegisterDomainErrorResponse(hasOverdueLoan, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LOAN-003",
		Message: "This member has an overdue loan and cannot borrow.",
	})

	sharedError.RegisterDomainErrorResponse(itemUnavailable, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LOAN-004",
		Message: "This media is not available.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyReturned, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LOAN-005",
		Message: "This loan has already been returned.",
	})

	sharedError.RegisterDomainErrorResponse(loanNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LOAN-006",
		Message: "Loan not found.",
	})

	sharedError.RegisterDomainErrorResponse(invalidReturnDate, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LOAN-007",
		Message: "The return date cannot be before the loan date.",
		Field:   "returnDate",
	})

	sharedError.RegisterFieldError(mediaNotSelected, "mediaId", "This field is required.")
	sharedError.RegisterFieldError(memberRequired, "memberId", "This field is required.")
	sharedError.RegisterFieldError(returnDateRequired, "returnDate", "The return date must be provided.")
	sharedError.RegisterFieldError(returnDateMalformed, "returnDate", "Enter a valid date (YYYY-MM-DD).")
}
