package member

import (
	"time"

	"github.com/onemapafrica/member-hub-api/internal/model"
)

type CreateMemberRequest struct {
	FirstName        string     `json:"firstName" binding:"required,min=1,max=100"`
	LastName         string     `json:"lastName" binding:"required,min=1,max=100"`
	Email            string     `json:"email" binding:"required,email,max=255"`
	Phone            string     `json:"phone" binding:"required,phone"`
	Address          string     `json:"address" binding:"max=255"`
	Country          string     `json:"country" binding:"max=100"`
	Status           string     `json:"membershipStatus" binding:"omitempty,oneof=Active Inactive Pending"`
	Role             string     `json:"role" binding:"omitempty,oneof=member staff executive board_member"`
	PhotoURL         string     `json:"photo" binding:"omitempty,url,max=500"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Occupation       string     `json:"occupation" binding:"max=100"`
	EmergencyContact string     `json:"emergencyContact" binding:"max=255"`
}

type UpdateMemberRequest struct {
	FirstName        *string    `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName         *string    `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email            *string    `json:"email" binding:"omitempty,email,max=255"`
	Phone            *string    `json:"phone" binding:"omitempty,phone"`
	Address          *string    `json:"address" binding:"omitempty,max=255"`
	Country          *string    `json:"country" binding:"omitempty,max=100"`
	Status           *string    `json:"membershipStatus" binding:"omitempty,oneof=Active Inactive Pending"`
	Role             *string    `json:"role" binding:"omitempty,oneof=member staff executive board_member"`
	PhotoURL         *string    `json:"photo" binding:"omitempty,url,max=500"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Occupation       *string    `json:"occupation" binding:"omitempty,max=100"`
	EmergencyContact *string    `json:"emergencyContact" binding:"omitempty,max=255"`
}

type ListMembersRequest struct {
	Search string `form:"search" binding:"max=100"`
	Status string `form:"status" binding:"omitempty,oneof=Active Inactive Pending"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
}

type MemberResponse struct {
	ID               uint32     `json:"id"`
	MembershipID     string     `json:"membershipId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address,omitempty"`
	Country          string     `json:"country,omitempty"`
	Status           string     `json:"membershipStatus"`
	Role             string     `json:"role"`
	PhotoURL         string     `json:"photo,omitempty"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	Occupation       string     `json:"occupation,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// CardSummary is the current-card shape embedded in the member detail
// response. The full card API lives in the card domain.
type CardSummary struct {
	CardID     string    `json:"cardId"`
	IssueDate  time.Time `json:"issueDate"`
	ExpiryDate time.Time `json:"expiryDate"`
	IsActive   bool      `json:"isActive"`
	QRCodeURL  string    `json:"qrCodeUrl"`
}

type MemberDetailResponse struct {
	Member *MemberResponse `json:"member"`
	Card   *CardSummary    `json:"card,omitempty"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

func NewMemberResponse(m *model.Member) *MemberResponse {
	return &MemberResponse{
		ID:               m.ID,
		MembershipID:     m.MembershipID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		Country:          m.Country,
		Status:           m.Status,
		Role:             m.Role,
		PhotoURL:         m.PhotoURL,
		DateOfBirth:      m.DateOfBirth,
		Occupation:       m.Occupation,
		EmergencyContact: m.EmergencyContact,
		CreatedAt:        m.CreatedAt,
	}
}

func newCardSummary(c *model.Card) *CardSummary {
	return &CardSummary{
		CardID:     c.CardID,
		IssueDate:  c.IssueDate,
		ExpiryDate: c.ExpiryDate,
		IsActive:   c.IsActive,
		QRCodeURL:  c.QRCodeURL,
	}
}
