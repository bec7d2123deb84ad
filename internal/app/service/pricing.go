package service

import (
	"strings"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"
)

// AmountForUrgency is the single source of request pricing. Unknown and empty
// urgencies are charged the low tier.
func AmountForUrgency(urgency string) int {
	switch strings.ToLower(urgency) {
	case ds.UrgencyHigh:
		return 500
	case ds.UrgencyNormal:
		return 300
	default:
		return 100
	}
}
