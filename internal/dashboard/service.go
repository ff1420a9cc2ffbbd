package dashboard

import (
	"context"
	"fmt"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/transaction"
	"gorm.io/gorm"
)

// DashboardService aggregates the admin landing-page counters.
type DashboardService struct {
	db                    *gorm.DB
	dashboardRepository   *DashboardRepository
	transactionRepository *transaction.TransactionRepository
}

func NewDashboardService(db *gorm.DB, dashboardRepository *DashboardRepository, transactionRepository *transaction.TransactionRepository) *DashboardService {
	return &DashboardService{
		db:                    db,
		dashboardRepository:   dashboardRepository,
		transactionRepository: transactionRepository,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardResponse, error) {
	memberCounts, err := s.dashboardRepository.CountMembersByStatus(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}

	activeCards, inactiveCards, err := s.dashboardRepository.CountCardsByActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}

	totals, err := s.transactionRepository.TotalsByStatus(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("sum transactions: %w", err)
	}

	members := MemberStats{
		Active:   memberCounts[model.MemberStatusActive],
		Inactive: memberCounts[model.MemberStatusInactive],
		Pending:  memberCounts[model.MemberStatusPending],
	}
	members.Total = members.Active + members.Inactive + members.Pending

	return &DashboardResponse{
		Members: members,
		Cards: CardStats{
			Total:    activeCards + inactiveCards,
			Active:   activeCards,
			Inactive: inactiveCards,
		},
		Transactions: TransactionStats{
			Pending:  totals[model.TransactionStatusPending],
			Success:  totals[model.TransactionStatusSuccess],
			Failed:   totals[model.TransactionStatusFailed],
			Refunded: totals[model.TransactionStatusRefunded],
		},
	}, nil
}
