package signature

import (
	"context"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type SignatureRepository struct{}

func NewSignatureRepository() *SignatureRepository {
	return &SignatureRepository{}
}

func (r *SignatureRepository) CreateAsset(ctx context.Context, db *gorm.DB, asset *model.Asset) error {
	return db.WithContext(ctx).Create(asset).Error
}

func (r *SignatureRepository) FindAsset(ctx context.Context, db *gorm.DB, id string) (*model.Asset, error) {
	var asset model.Asset
	err := db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// FindSignature returns the singleton row, or gorm.ErrRecordNotFound when no
// signature has ever been set.
func (r *SignatureRepository) FindSignature(ctx context.Context, db *gorm.DB) (*model.Signature, error) {
	var sig model.Signature
	err := db.WithContext(ctx).Order("id").First(&sig).Error
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

func (r *SignatureRepository) SaveSignature(ctx context.Context, db *gorm.DB, sig *model.Signature) error {
	return db.WithContext(ctx).Save(sig).Error
}

func (r *SignatureRepository) DeleteSignature(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Signature{}, "id = ?", id).Error
}
