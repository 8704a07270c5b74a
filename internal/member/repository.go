package member

import (
	"context"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// IsExist reports whether another member already uses email.
// excludeID skips the member being updated; pass 0 on creation.
func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string, excludeID uint32) (bool, error) {
	var count int64
	query := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, ID uint32) error {
	return db.WithContext(ctx).Where("id = ?", ID).Delete(&model.Member{}).Error
}

func (m *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}
