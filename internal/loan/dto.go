package loan

// DateLayout is the wire format of loan dates
const DateLayout = "2006-01-02"

// MemberID and MediaID are checked by the service so that a board game
// request is always reported as non-circulating first
type CreateLoanRequest struct {
	MemberID  uint32 `json:"memberId"`
	MediaType string `json:"mediaType" binding:"required,mediatype"`
	MediaID   uint32 `json:"mediaId"`
}

// ReturnLoanRequest carries an optional return date.
// Omitted means today; present but empty is rejected.
type ReturnLoanRequest struct {
	ReturnDate *string `json:"returnDate"`
}

type ListLoansQuery struct {
	MemberID uint32 `form:"memberId"`
	Open     *bool  `form:"open"`
}

type LoanResponse struct {
	ID         uint32  `json:"id"`
	MemberID   uint32  `json:"memberId"`
	MediaType  string  `json:"mediaType"`
	MediaID    uint32  `json:"mediaId"`
	LoanDate   string  `json:"loanDate"`
	DueDate    string  `json:"dueDate"`
	ReturnDate *string `json:"returnDate"`
	Status     string  `json:"status"`
	Overdue    bool    `json:"overdue"`
}
