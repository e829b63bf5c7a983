package valueobjects

import (
	"fmt"
	"strings"
)

// SubscriptionType describes how a course grants time-bounded access.
// The zero value means the course has no subscription model configured,
// which approval treats as unbounded.
type SubscriptionType string

const (
	SubscriptionNone  SubscriptionType = ""
	SubscriptionFree  SubscriptionType = "free"
	SubscriptionTrial SubscriptionType = "trial"
	SubscriptionPaid  SubscriptionType = "paid"
)

var ValidSubscriptionTypes = map[SubscriptionType]bool{
	SubscriptionNone:  true,
	SubscriptionFree:  true,
	SubscriptionTrial: true,
	SubscriptionPaid:  true,
}

// ParseSubscriptionType normalizes and validates a subscription type string.
func ParseSubscriptionType(value string) (SubscriptionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	st := SubscriptionType(normalized)
	if !ValidSubscriptionTypes[st] {
		return "", fmt.Errorf("invalid subscription type: %s", value)
	}
	return st, nil
}

func (s SubscriptionType) String() string {
	return string(s)
}

func (s SubscriptionType) IsPaid() bool {
	return s == SubscriptionPaid
}

func (s SubscriptionType) IsTrial() bool {
	return s == SubscriptionTrial
}
