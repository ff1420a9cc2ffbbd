package dashboard

import (
	"context"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type DashboardRepository struct{}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

func (r *DashboardRepository) CountMembersByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DashboardRepository) CountCardsByActive(ctx context.Context, db *gorm.DB) (active, inactive int64, err error) {
	var rows []struct {
		IsActive bool
		Count    int64
	}

	err = db.WithContext(ctx).
		Model(&model.Card{}).
		Select("is_active, COUNT(*) AS count").
		Group("is_active").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		if row.IsActive {
			active = row.Count
		} else {
			inactive = row.Count
		}
	}
	return active, inactive, nil
}
