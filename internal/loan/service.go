package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/member"
	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/clock"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"gorm.io/gorm"
)

// LoanService is the only writer of loan records and item availability
type LoanService struct {
	db                *gorm.DB
	loanRepository    *LoanRepository
	memberRepository  *member.MemberRepository
	catalogRepository *catalog.CatalogRepository
	policy            Policy
	clock             clock.Clock
}

func NewLoanService(
	db *gorm.DB,
	loanRepository *LoanRepository,
	memberRepository *member.MemberRepository,
	catalogRepository *catalog.CatalogRepository,
	policy Policy,
	clk clock.Clock,
) *LoanService {
	if clk == nil {
		clk = clock.System{}
	}
	return &LoanService{
		db:                db,
		loanRepository:    loanRepository,
		memberRepository:  memberRepository,
		catalogRepository: catalogRepository,
		policy:            policy,
		clock:             clk,
	}
}

// CreateLoan lends an item to a member.
//
// Rules are checked in a fixed order and the first violation is returned:
//  1. the media type must circulate (board games never do)
//  2. the member must exist
//  3. the item must exist and be available
//  4. the member must hold fewer than MaxActiveLoans open loans
//  5. the member must have no overdue loan
//  6. the item must still be claimable when the loan is written
//
// Steps 2 to 6 and the insert run in one transaction.
func (s *LoanService) CreateLoan(ctx context.Context, request *CreateLoanRequest) (*LoanResponse, error) {
	ctx = logger.WithAttrs(ctx, "member_id", request.MemberID, "media_type", request.MediaType, "media_id", request.MediaID)
	log := logger.FromContext(ctx)

	mediaType, ok := model.ParseMediaType(request.MediaType)
	if !ok {
		return nil, fmt.Errorf("media type %q: %w", request.MediaType, catalog.ErrInvalidMediaType)
	}
	if !mediaType.IsCirculating() {
		log.Warn("Loan refused - non circulating media")
		return nil, fmt.Errorf("media type %s: %w", mediaType, ErrNonCirculatingItem)
	}

	if request.MemberID == 0 {
		return nil, fmt.Errorf("create loan: %w", ErrMemberRequired)
	}

	ref := model.ItemRef{Type: mediaType, ID: request.MediaID}
	today := model.DateOf(s.clock.Now())
	var loan *model.Loan

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.memberRepository.FindByID(ctx, tx, request.MemberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %d: %w", request.MemberID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		if err := s.checkSelection(ctx, tx, ref); err != nil {
			return err
		}

		openLoans, err := s.loanRepository.CountOpenLoans(ctx, tx, request.MemberID)
		if err != nil {
			return fmt.Errorf("count open loans: %w", err)
		}
		if openLoans >= int64(s.policy.MaxActiveLoans) {
			log.Warn("Loan refused - too many active loans", "open_loans", openLoans)
			return fmt.Errorf("member %d has %d open loans: %w", request.MemberID, openLoans, ErrTooManyActiveLoans)
		}

		overdue, err := s.loanRepository.FindOverdueOpenLoans(ctx, tx, request.MemberID, today, s.policy.PeriodDays)
		if err != nil {
			return fmt.Errorf("find overdue loans: %w", err)
		}
		if len(overdue) > 0 {
			log.Warn("Loan refused - overdue loan", "overdue_loan_id", overdue[0].ID)
			return fmt.Errorf("member %d, loan %d: %w", request.MemberID, overdue[0].ID, ErrHasOverdueLoan)
		}

		claimed, err := s.catalogRepository.Claim(ctx, tx, ref)
		if err != nil {
			return fmt.Errorf("claim media: %w", err)
		}
		if !claimed {
			log.Warn("Loan refused - media taken concurrently")
			return fmt.Errorf("media %s/%d: %w", ref.Type, ref.ID, ErrItemUnavailable)
		}

		loan = model.NewLoan(request.MemberID, ref, today, s.policy.PeriodDays)
		if err := s.loanRepository.Insert(ctx, tx, loan); err != nil {
			log.Error("Failed to insert loan", "error", err)
			return fmt.Errorf("insert loan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Loan created", "loan_id", loan.ID, "due_date", loan.DueDate.Format(DateLayout))
	return s.toLoanResponse(loan), nil
}

// checkSelection requires an existing, available item of the requested type
func (s *LoanService) checkSelection(ctx context.Context, tx *gorm.DB, ref model.ItemRef) error {
	if ref.ID == 0 {
		return fmt.Errorf("no media selected: %w", ErrMediaNotSelected)
	}

	if _, err := s.catalogRepository.FindAvailableByID(ctx, tx, ref); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("media %s/%d is not an available choice: %w", ref.Type, ref.ID, ErrMediaNotSelected)
		}
		return fmt.Errorf("find media: %w", err)
	}
	return nil
}

// ReturnLoan closes an open loan and puts its item back on the shelf, atomically.
func (s *LoanService) ReturnLoan(ctx context.Context, loanID uint32, request *ReturnLoanRequest) (*LoanResponse, error) {
	ctx = logger.WithAttrs(ctx, "loan_id", loanID)
	log := logger.FromContext(ctx)
	var loan *model.Loan

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		loan, err = s.loanRepository.FindByID(ctx, tx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("loan %d: %w", loanID, ErrLoanNotFound)
			}
			return fmt.Errorf("find loan: %w", err)
		}

		if !loan.IsOpen() {
			log.Warn("Return refused - already returned")
			return fmt.Errorf("loan %d: %w", loanID, ErrAlreadyReturned)
		}

		returnDate, err := s.resolveReturnDate(request)
		if err != nil {
			return err
		}
		if returnDate.Before(loan.LoanDate) {
			return fmt.Errorf("loan %d returned %s before %s: %w",
				loanID, returnDate.Format(DateLayout), loan.LoanDate.Format(DateLayout), ErrInvalidReturnDate)
		}

		updated, err := s.loanRepository.MarkReturned(ctx, tx, loanID, returnDate)
		if err != nil {
			return fmt.Errorf("mark loan returned: %w", err)
		}
		if !updated {
			return fmt.Errorf("loan %d: %w", loanID, ErrAlreadyReturned)
		}

		released, err := s.catalogRepository.Release(ctx, tx, loan.ItemRef())
		if err != nil {
			log.Error("Failed to release media", "error", err)
			return fmt.Errorf("release media: %w", err)
		}
		if !released {
			log.Warn("Returned media is no longer in the catalog", "media_type", loan.ItemType, "media_id", loan.ItemID)
		}

		loan.ReturnDate = &returnDate
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Loan returned", "return_date", loan.ReturnDate.Format(DateLayout))
	return s.toLoanResponse(loan), nil
}

func (s *LoanService) resolveReturnDate(request *ReturnLoanRequest) (time.Time, error) {
	if request == nil || request.ReturnDate == nil {
		return model.DateOf(s.clock.Now()), nil
	}

	value := strings.TrimSpace(*request.ReturnDate)
	if value == "" {
		return time.Time{}, fmt.Errorf("return date: %w", ErrReturnDateRequired)
	}

	returnDate, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("return date %q: %w", value, ErrReturnDateMalformed)
	}
	return returnDate, nil
}

func (s *LoanService) GetLoan(ctx context.Context, loanID uint32) (*LoanResponse, error) {
	loan, err := s.loanRepository.FindByID(ctx, s.db, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loan %d: %w", loanID, ErrLoanNotFound)
		}
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return s.toLoanResponse(loan), nil
}

func (s *LoanService) ListLoans(ctx context.Context, query *ListLoansQuery) ([]LoanResponse, error) {
	loans, err := s.loanRepository.FindAll(ctx, s.db, ListFilter{
		MemberID: query.MemberID,
		OpenOnly: query.Open,
	})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	responses := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		responses = append(responses, *s.toLoanResponse(&loans[i]))
	}
	return responses, nil
}

// PurgeMemberLoans releases the items of the member's open loans and deletes
// all of the member's loan records. It runs on the caller's transaction.
func (s *LoanService) PurgeMemberLoans(ctx context.Context, tx *gorm.DB, memberID uint32) (int64, error) {
	openLoans, err := s.loanRepository.FindOpenByMember(ctx, tx, memberID)
	if err != nil {
		return 0, fmt.Errorf("find open loans: %w", err)
	}

	for i := range openLoans {
		if _, err := s.catalogRepository.Release(ctx, tx, openLoans[i].ItemRef()); err != nil {
			return 0, fmt.Errorf("release media of loan %d: %w", openLoans[i].ID, err)
		}
	}

	deleted, err := s.loanRepository.DeleteByMember(ctx, tx, memberID)
	if err != nil {
		return 0, fmt.Errorf("delete loans: %w", err)
	}
	return deleted, nil
}

func (s *LoanService) toLoanResponse(loan *model.Loan) *LoanResponse {
	response := &LoanResponse{
		ID:        loan.ID,
		MemberID:  loan.MemberID,
		MediaType: loan.ItemType.String(),
		MediaID:   loan.ItemID,
		LoanDate:  loan.LoanDate.Format(DateLayout),
		DueDate:   loan.DueDate.Format(DateLayout),
		Status:    string(loan.State()),
		Overdue:   loan.IsOverdue(s.clock.Now(), s.policy.PeriodDays),
	}
	if loan.ReturnDate != nil {
		returnDate := loan.ReturnDate.Format(DateLayout)
		response.ReturnDate = &returnDate
	}
	return response
}
