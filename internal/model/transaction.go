package model

import "time"

// Transaction status values. Records arrive from the payment collaborator and
// are immutable from this service's perspective.
const (
	TransactionStatusPending  = "pending"
	TransactionStatusSuccess  = "success"
	TransactionStatusFailed   = "failed"
	TransactionStatusRefunded = "refunded"
)

// Transaction is one financial ledger record.
type Transaction struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	TransactionRef string `gorm:"column:transaction_ref;type:varchar(50);not null;uniqueIndex:idx_transaction_ref"`
	Name           string `gorm:"column:name;type:varchar(200);not null"`
	Email          string `gorm:"column:email;type:varchar(255);not null"`

	Amount   float64 `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency string  `gorm:"column:currency;type:varchar(10);not null"`
	Method   string  `gorm:"column:method;type:varchar(30);not null"`
	Purpose  string  `gorm:"column:purpose;type:varchar(200)"`
	Status   string  `gorm:"column:status;type:varchar(20);not null"`

	TransactionDate time.Time `gorm:"column:transaction_date;not null"`

	BaseEntity
}

// TableName specifies the table name for Transaction
func (*Transaction) TableName() string {
	return "transaction"
}
