package verify

import (
	"time"

	"github.com/onemapafrica/member-hub-api/internal/model"
)

// Status classifies a card's validity at a point in time.
type Status string

const (
	StatusValid    Status = "VALID"
	StatusExpired  Status = "EXPIRED"
	StatusRevoked  Status = "REVOKED"
	StatusNotFound Status = "NOT_FOUND"
)

// Classify is the pure classification rule. Expiry wins over revocation:
// a card past its expiry is EXPIRED no matter what IsActive says.
func Classify(card *model.Card, now time.Time) Status {
	if card == nil {
		return StatusNotFound
	}
	if card.Expired(now) {
		return StatusExpired
	}
	if !card.IsActive {
		return StatusRevoked
	}
	return StatusValid
}
