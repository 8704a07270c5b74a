package loan

import (
	"context"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"gorm.io/gorm"
)

// ListFilter narrows FindAll; zero values match everything
type ListFilter struct {
	MemberID uint32
	OpenOnly *bool
}

type LoanRepository struct{}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{}
}

func (r *LoanRepository) Insert(ctx context.Context, db *gorm.DB, loan *model.Loan) error {
	return db.WithContext(ctx).Create(loan).Error
}

// FindByID returns gorm.ErrRecordNotFound when the loan does not exist
func (r *LoanRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Loan, error) {
	var loan model.Loan
	err := db.WithContext(ctx).Where("id = ?", ID).First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) FindAll(ctx context.Context, db *gorm.DB, filter ListFilter) ([]model.Loan, error) {
	query := db.WithContext(ctx).Order("id")
	if filter.MemberID != 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.OpenOnly != nil {
		if *filter.OpenOnly {
			query = query.Where("return_date IS NULL")
		} else {
			query = query.Where("return_date IS NOT NULL")
		}
	}

	var loans []model.Loan
	if err := query.Find(&loans).Error; err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanRepository) CountOpenLoans(ctx context.Context, db *gorm.DB, memberID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("member_id = ? AND return_date IS NULL", memberID).
		Count(&count).Error
	return count, err
}

// CountOpenByItem counts open loans referencing an item
func (r *LoanRepository) CountOpenByItem(ctx context.Context, db *gorm.DB, ref model.ItemRef) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("item_type = ? AND item_id = ? AND return_date IS NULL", ref.Type, ref.ID).
		Count(&count).Error
	return count, err
}

// FindOverdueOpenLoans returns the member's open loans started before asOf - periodDays
func (r *LoanRepository) FindOverdueOpenLoans(ctx context.Context, db *gorm.DB, memberID uint32, asOf time.Time, periodDays int) ([]model.Loan, error) {
	var loans []model.Loan
	err := db.WithContext(ctx).
		Where("member_id = ? AND return_date IS NULL AND loan_date < ?", memberID, model.OverdueCutoff(asOf, periodDays)).
		Order("id").
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanRepository) FindOpenByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.Loan, error) {
	var loans []model.Loan
	err := db.WithContext(ctx).
		Where("member_id = ? AND return_date IS NULL", memberID).
		Order("id").
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// MarkReturned sets the return date of an open loan.
// Reports false when the loan was already returned, so concurrent returns
// cannot both succeed.
func (r *LoanRepository) MarkReturned(ctx context.Context, db *gorm.DB, ID uint32, returnDate time.Time) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("id = ? AND return_date IS NULL", ID).
		Update("return_date", returnDate)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *LoanRepository) DeleteByMember(ctx context.Context, db *gorm.DB, memberID uint32) (int64, error) {
	result := db.WithContext(ctx).Where("member_id = ?", memberID).Delete(&model.Loan{})
	return result.RowsAffected, result.Error
}
