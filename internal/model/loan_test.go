package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLoan_DueDate(t *testing.T) {
	loanDate := time.Date(2025, 3, 28, 15, 30, 0, 0, time.UTC)

	loan := NewLoan(1, ItemRef{Type: MediaTypeCD, ID: 2}, loanDate, DefaultLoanPeriodDays)

	assert.Equal(t, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), loan.LoanDate)
	assert.Equal(t, time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC), loan.DueDate)
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, LoanStateOpen, loan.State())
}

func TestBeforeCreate_FillsDueDate(t *testing.T) {
	loan := &Loan{
		MemberID: 1,
		ItemType: MediaTypeBook,
		ItemID:   1,
		LoanDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, loan.BeforeCreate(nil))
	assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), loan.DueDate)
}

func TestBeforeCreate_KeepsExplicitDueDate(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	loan := &Loan{ItemType: MediaTypeDVD, LoanDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), DueDate: due}

	assert.NoError(t, loan.BeforeCreate(nil))
	assert.Equal(t, due, loan.DueDate)
}

func TestBeforeCreate_RejectsBoardGame(t *testing.T) {
	loan := &Loan{MemberID: 1, ItemType: MediaTypeBoardGame, ItemID: 1}

	assert.ErrorIs(t, loan.BeforeCreate(nil), ErrNonCirculatingLoan)
}

func TestIsOverdue_StrictBoundary(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	sevenDays := &Loan{LoanDate: DateOf(today).AddDate(0, 0, -7)}
	eightDays := &Loan{LoanDate: DateOf(today).AddDate(0, 0, -8)}

	assert.False(t, sevenDays.IsOverdue(today, DefaultLoanPeriodDays))
	assert.True(t, eightDays.IsOverdue(today, DefaultLoanPeriodDays))

	returned := DateOf(today)
	eightDays.ReturnDate = &returned
	assert.False(t, eightDays.IsOverdue(today, DefaultLoanPeriodDays))
	assert.Equal(t, LoanStateReturned, eightDays.State())
}
