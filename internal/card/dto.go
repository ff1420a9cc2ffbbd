package card

import (
	"time"

	"github.com/onemapafrica/member-hub-api/internal/model"
)

type RevokeCardRequest struct {
	Reason  string `json:"reason" binding:"required,oneof=Lost Stolen Damaged 'Membership Ended' Other"`
	Details string `json:"details" binding:"required_if=Reason Other,max=500"`
}

type ReactivateCardRequest struct {
	Reason  string `json:"reason" binding:"required,oneof='Membership Restored' 'Card Found' Other"`
	Details string `json:"details" binding:"required_if=Reason Other,max=500"`
}

// CardResponse mirrors the card shape consumed by the admin client.
type CardResponse struct {
	CardID     string    `json:"cardId"`
	MemberID   uint32    `json:"memberId"`
	IssueDate  time.Time `json:"issueDate"`
	ExpiryDate time.Time `json:"expiryDate"`
	IsActive   bool      `json:"isActive"`
	QRCodeURL  string    `json:"qrCodeUrl"`
}

func NewCardResponse(c *model.Card) *CardResponse {
	return &CardResponse{
		CardID:     c.CardID,
		MemberID:   c.MemberID,
		IssueDate:  c.IssueDate,
		ExpiryDate: c.ExpiryDate,
		IsActive:   c.IsActive,
		QRCodeURL:  c.QRCodeURL,
	}
}
