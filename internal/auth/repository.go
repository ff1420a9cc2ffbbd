package auth

import (
	"context"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AdminRepository) Create(ctx context.Context, db *gorm.DB, admin *model.AdminUser) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *AdminRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
