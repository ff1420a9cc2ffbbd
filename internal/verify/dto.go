package verify

import (
	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/member"
)

// VerificationResponse is the public verification result. Card and Member are
// present whenever the card was found, so scanners can show the holder.
type VerificationResponse struct {
	IsValid bool                   `json:"isValid"`
	Status  Status                 `json:"status"`
	Card    *card.CardResponse     `json:"card,omitempty"`
	Member  *member.MemberResponse `json:"member,omitempty"`
}
