package member

import (
	"context"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByMembershipID(ctx context.Context, db *gorm.DB, membershipID string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("membership_id = ?", membershipID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) List(ctx context.Context, db *gorm.DB, search, status string, offset, limit int) ([]model.Member, int64, error) {
	query := db.WithContext(ctx).Model(&model.Member{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR membership_id LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.Member
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (m *MemberRepository) Update(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, ID uint32) error {
	return db.WithContext(ctx).Delete(&model.Member{}, "id = ?", ID).Error
}

func (m *MemberRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Member{}).Count(&count).Error
	return count, err
}

// FindCurrentCard returns the member's card, if one was ever issued.
// The card domain owns card mutation; this is a read for the detail view.
func (m *MemberRepository) FindCurrentCard(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Card, error) {
	var card model.Card
	err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}
