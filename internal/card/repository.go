package card

import (
	"context"
	"fmt"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type CardRepository struct{}

func NewCardRepository() *CardRepository {
	return &CardRepository{}
}

func (r *CardRepository) Create(ctx context.Context, db *gorm.DB, card *model.Card) error {
	return db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) FindByCardID(ctx context.Context, db *gorm.DB, cardID string) (*model.Card, error) {
	var card model.Card
	err := db.WithContext(ctx).Where("card_id = ?", cardID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Card, error) {
	var card model.Card
	err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) SetActive(ctx context.Context, db *gorm.DB, id uint32, active bool) error {
	return db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// CountSerialsForYear counts serials already allocated for a given year.
func (r *CardRepository) CountSerialsForYear(ctx context.Context, db *gorm.DB, year int) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Card{}).
		Where("card_id LIKE ?", fmt.Sprintf("OMA-%d-%%", year)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CardRepository) CreateEvent(ctx context.Context, db *gorm.DB, event *model.CardEvent) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *CardRepository) FindEvents(ctx context.Context, db *gorm.DB, cardID uint32) ([]model.CardEvent, error) {
	var events []model.CardEvent
	err := db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
