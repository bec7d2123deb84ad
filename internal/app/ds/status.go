package ds

import "strings"

// RequestStatus is the workflow state of a blood request. The empty value
// means "unset" and is accepted wherever a status may be cleared.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusFulfilled RequestStatus = "fulfilled"
	StatusCancelled RequestStatus = "cancelled"
)

// Every known status may currently move to every other one. The table exists
// so that tightening a transition is a one-line change.
var statusTransitions = map[RequestStatus][]RequestStatus{
	"":              {"", StatusPending, StatusFulfilled, StatusCancelled},
	StatusPending:   {"", StatusPending, StatusFulfilled, StatusCancelled},
	StatusFulfilled: {"", StatusPending, StatusFulfilled, StatusCancelled},
	StatusCancelled: {"", StatusPending, StatusFulfilled, StatusCancelled},
}

// ParseRequestStatus accepts a known status in any letter case, or the empty
// string.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	st := RequestStatus(strings.ToLower(strings.TrimSpace(s)))
	_, ok := statusTransitions[st]
	return st, ok
}

// CanTransitionTo reports whether next is reachable from s. A stored status
// outside the known set is treated like an unset one.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		allowed = statusTransitions[""]
	}
	for _, st := range allowed {
		if st == next {
			return true
		}
	}
	return false
}

// AmountStatus is the payment state of a request. Only PAID exists.
type AmountStatus string

const AmountPaid AmountStatus = "PAID"

func ParseAmountStatus(s string) (AmountStatus, bool) {
	if AmountStatus(s) == AmountPaid {
		return AmountPaid, true
	}
	return "", false
}

const (
	UrgencyHigh   = "high"
	UrgencyNormal = "normal"
	UrgencyLow    = "low"
)
