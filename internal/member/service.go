package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"gorm.io/gorm"
)

// LoanPurger closes and removes the loans of a member being deleted.
// Implemented by the loan service so that item availability is only changed there.
type LoanPurger interface {
	PurgeMemberLoans(ctx context.Context, tx *gorm.DB, memberID uint32) (int64, error)
}

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	loanPurger       LoanPurger
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, loanPurger LoanPurger) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		loanPurger:       loanPurger,
	}
}

func (s *MemberService) CreateMember(ctx context.Context, request *MemberRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	var response *MemberResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.IsExist(ctx, tx, request.Email, 0)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Member already exists", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email %s: %w", logger.MaskEmail(request.Email), ErrMemberAlreadyExists)
		}

		member := model.NewMember(request.FirstName, request.LastName, request.Email)
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("Member created", "member_id", member.ID, "name", logger.MaskName(member.FirstName, member.LastName), "email", logger.MaskEmail(request.Email))
		response = toMemberResponse(member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID uint32) (*MemberResponse, error) {
	member, err := s.findMember(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *MemberService) ListMembers(ctx context.Context) ([]MemberResponse, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return responses, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, memberID uint32, request *MemberRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	var response *MemberResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		exists, err := s.memberRepository.IsExist(ctx, tx, request.Email, memberID)
		if err != nil {
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Email taken by another member", "member_id", memberID, "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email %s: %w", logger.MaskEmail(request.Email), ErrMemberAlreadyExists)
		}

		member.FirstName = request.FirstName
		member.LastName = request.LastName
		member.Email = request.Email
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			log.Error("Failed to update member", "member_id", memberID, "error", err)
			return fmt.Errorf("update member: %w", err)
		}

		response = toMemberResponse(member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Member updated", "member_id", memberID)
	return response, nil
}

// DeleteMember removes a member together with their loan records
func (s *MemberService) DeleteMember(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.findMember(ctx, tx, memberID); err != nil {
			return err
		}

		purged, err := s.loanPurger.PurgeMemberLoans(ctx, tx, memberID)
		if err != nil {
			log.Error("Failed to remove member loans", "member_id", memberID, "error", err)
			return fmt.Errorf("remove member loans: %w", err)
		}

		if err := s.memberRepository.Delete(ctx, tx, memberID); err != nil {
			log.Error("Failed to delete member", "member_id", memberID, "error", err)
			return fmt.Errorf("delete member: %w", err)
		}

		log.Info("Member deleted", "member_id", memberID, "loans_removed", purged)
		return nil
	})
}

func (s *MemberService) findMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return member, nil
}

func toMemberResponse(member *model.Member) *MemberResponse {
	return &MemberResponse{
		ID:        member.ID,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		FullName:  member.FullName(),
		Email:     member.Email,
	}
}
