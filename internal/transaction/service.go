package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"gorm.io/gorm"
)

// TransactionService exposes the ledger read-only. Records are written by the
// payment collaborator, never by this API.
type TransactionService struct {
	db                    *gorm.DB
	transactionRepository *TransactionRepository
}

func NewTransactionService(db *gorm.DB, transactionRepository *TransactionRepository) *TransactionService {
	return &TransactionService{
		db:                    db,
		transactionRepository: transactionRepository,
	}
}

func (s *TransactionService) List(ctx context.Context, request *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	offset := (request.Page - 1) * request.Limit

	transactions, total, err := s.transactionRepository.List(ctx, s.db, request.Status, offset, request.Limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}

	return &ListTransactionsResponse{
		Transactions: responses,
		Total:        total,
		Page:         request.Page,
		Limit:        request.Limit,
	}, nil
}

func (s *TransactionService) GetByRef(ctx context.Context, ref string) (*TransactionResponse, error) {
	transaction, err := s.transactionRepository.FindByRef(ctx, s.db, ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	response := toTransactionResponse(transaction)
	return &response, nil
}

func toTransactionResponse(t *model.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionRef:  t.TransactionRef,
		Name:            t.Name,
		Email:           t.Email,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Method:          t.Method,
		Purpose:         t.Purpose,
		Status:          t.Status,
		TransactionDate: t.TransactionDate,
	}
}
