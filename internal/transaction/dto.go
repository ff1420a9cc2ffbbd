package transaction

import "time"

type ListTransactionsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending success failed refunded"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
}

type TransactionResponse struct {
	TransactionRef  string    `json:"transactionRef"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Method          string    `json:"method"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transactionDate"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}
