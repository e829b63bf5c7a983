package valueobjects

import (
	"fmt"
	"strings"
	"time"
)

// PeriodToken identifies a purchasable subscription period. The month and
// year tokens use calendar arithmetic, not fixed 30-day multiples.
type PeriodToken string

const (
	Period30Days  PeriodToken = "30_days"
	Period3Months PeriodToken = "3_months"
	Period6Months PeriodToken = "6_months"
	Period1Year   PeriodToken = "1_year"
)

var ValidPeriodTokens = map[PeriodToken]bool{
	Period30Days:  true,
	Period3Months: true,
	Period6Months: true,
	Period1Year:   true,
}

// ParsePeriodToken normalizes and validates a period token string.
func ParsePeriodToken(value string) (PeriodToken, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	token := PeriodToken(normalized)

	if normalized == "" {
		return "", fmt.Errorf("period token cannot be empty")
	}

	if !ValidPeriodTokens[token] {
		return "", fmt.Errorf("invalid period token: %s", value)
	}

	return token, nil
}

func (p PeriodToken) String() string {
	return string(p)
}

func (p PeriodToken) IsValid() bool {
	return ValidPeriodTokens[p]
}

// AddTo returns the instant one period after anchor.
func (p PeriodToken) AddTo(anchor time.Time) time.Time {
	switch p {
	case Period30Days:
		return anchor.AddDate(0, 0, 30)
	case Period3Months:
		return anchor.AddDate(0, 3, 0)
	case Period6Months:
		return anchor.AddDate(0, 6, 0)
	case Period1Year:
		return anchor.AddDate(1, 0, 0)
	default:
		return anchor
	}
}
