package card

// ReasonOther requires a free-text elaboration in Details.
const ReasonOther = "Other"

// RevokeReasons is the closed set accepted by RevokeCard.
var RevokeReasons = []string{
	"Lost",
	"Stolen",
	"Damaged",
	"Membership Ended",
	ReasonOther,
}

// ReactivateReasons is the closed set accepted by ReactivateCard.
var ReactivateReasons = []string{
	"Membership Restored",
	"Card Found",
	ReasonOther,
}

// validateReason enforces the reason taxonomy before any repository call:
// the reason must belong to the closed set, and Other demands details.
func validateReason(set []string, reason, details string) error {
	if reason == "" {
		return ErrInvalidReason
	}

	found := false
	for _, r := range set {
		if r == reason {
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidReason
	}

	if reason == ReasonOther && details == "" {
		return ErrReasonDetailsRequired
	}

	return nil
}
