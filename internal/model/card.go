package model

import "time"

// Card is an issued membership credential. Cards are never deleted; revocation
// flips IsActive and the history of transitions lives in card_event.
type Card struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// CardID is the printed serial (OMA-<year>-<seq>).
	CardID   string `gorm:"column:card_id;type:varchar(20);not null;uniqueIndex:idx_card_card_id"`
	MemberID uint32 `gorm:"column:member_id;not null;uniqueIndex:idx_card_member_id"`

	IssueDate  time.Time `gorm:"column:issue_date;not null"`
	ExpiryDate time.Time `gorm:"column:expiry_date;not null"`
	IsActive   bool      `gorm:"column:is_active;not null"`

	// QRCodeURL is a PNG data URI whose payload decodes to the verification URL
	// for exactly this CardID.
	QRCodeURL string `gorm:"column:qr_code_url;type:text;not null"`

	BaseEntity
}

// TableName specifies the table name for Card
func (*Card) TableName() string {
	return "card"
}

// Expired reports whether the card has passed its expiry at the given instant.
func (c *Card) Expired(now time.Time) bool {
	return !now.Before(c.ExpiryDate)
}
