package transaction

import (
	"context"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) List(ctx context.Context, db *gorm.DB, status string, offset, limit int) ([]model.Transaction, int64, error) {
	query := db.WithContext(ctx).Model(&model.Transaction{})

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

func (r *TransactionRepository) FindByRef(ctx context.Context, db *gorm.DB, ref string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := db.WithContext(ctx).Where("transaction_ref = ?", ref).First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// TotalsByStatus sums amounts per status for the dashboard.
func (r *TransactionRepository) TotalsByStatus(ctx context.Context, db *gorm.DB) (map[string]float64, error) {
	var rows []struct {
		Status string
		Total  float64
	}

	err := db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("status, COALESCE(SUM(amount), 0) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}
	return totals, nil
}
