package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// DefaultLoanPeriodDays is the lending period used when none is configured
const DefaultLoanPeriodDays = 7

// LoanState is derived from the return date
type LoanState string

const (
	LoanStateOpen     LoanState = "OPEN"
	LoanStateReturned LoanState = "RETURNED"
)

var ErrNonCirculatingLoan = errors.New("model: loan must reference a circulating item")

// Loan records one item lent to one member.
// The item is referenced by (ItemType, ItemID) since variants live in separate tables.
type Loan struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID uint32  `gorm:"column:member_id;not null;index:idx_loan_member"`
	Member   *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`

	ItemType MediaType `gorm:"column:item_type;size:20;not null;index:idx_loan_item"`
	ItemID   uint32    `gorm:"column:item_id;not null;index:idx_loan_item"`

	LoanDate   time.Time  `gorm:"column:loan_date;not null"`
	DueDate    time.Time  `gorm:"column:due_date;not null"`
	ReturnDate *time.Time `gorm:"column:return_date"` // nil while the loan is open

	BaseEntity
}

// TableName specifies the table name for Loan
func (*Loan) TableName() string {
	return "loan"
}

// NewLoan creates an open loan starting on loanDate
func NewLoan(memberID uint32, ref ItemRef, loanDate time.Time, periodDays int) *Loan {
	loanDate = DateOf(loanDate)
	return &Loan{
		MemberID: memberID,
		ItemType: ref.Type,
		ItemID:   ref.ID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDate(0, 0, periodDays),
	}
}

// BeforeCreate refuses board game loans and fills the due date when missing
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if !l.ItemType.IsCirculating() {
		return ErrNonCirculatingLoan
	}
	if l.LoanDate.IsZero() {
		l.LoanDate = DateOf(time.Now())
	}
	if l.DueDate.IsZero() {
		l.DueDate = l.LoanDate.AddDate(0, 0, DefaultLoanPeriodDays)
	}
	return nil
}

func (l *Loan) ItemRef() ItemRef {
	return ItemRef{Type: l.ItemType, ID: l.ItemID}
}

func (l *Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

func (l *Loan) State() LoanState {
	if l.IsOpen() {
		return LoanStateOpen
	}
	return LoanStateReturned
}

// IsOverdue reports an open loan started more than periodDays before asOf.
// A loan exactly periodDays old is not overdue yet.
func (l *Loan) IsOverdue(asOf time.Time, periodDays int) bool {
	return l.IsOpen() && l.LoanDate.Before(OverdueCutoff(asOf, periodDays))
}

// OverdueCutoff is the earliest loan date that is still on time at asOf
func OverdueCutoff(asOf time.Time, periodDays int) time.Time {
	return DateOf(asOf).AddDate(0, 0, -periodDays)
}

// DateOf truncates t to its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
