package access

import (
	"fmt"
	"time"

	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
)

// Window is the half-open interval [Start, End) during which approved access
// is honored. A nil End means unbounded access.
type Window struct {
	Start time.Time
	End   *time.Time
}

// Unbounded reports whether the window never closes.
func (w Window) Unbounded() bool {
	return w.End == nil
}

// Contains reports whether now falls inside the window. The end boundary is
// exclusive: access is denied the instant now equals End.
func (w Window) Contains(now time.Time) bool {
	if now.Before(w.Start) {
		return false
	}
	if w.End != nil && !now.Before(*w.End) {
		return false
	}
	return true
}

// Validate enforces the structural invariant End >= Start.
func (w Window) Validate() error {
	if w.End != nil && w.End.Before(w.Start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidWindow, w.End, w.Start)
	}
	return nil
}

// ComputeWindow derives the access window granted by an approval at anchor.
//
//   - trial courses with a trial day count close after that many days
//   - paid courses with a period token close one calendar period later
//   - paid courses without a token, free courses, and courses with no
//     subscription model are unbounded
//
// A caller supplying inputs that would close the window before it opens is a
// programming error; the function fails rather than clamping.
func ComputeWindow(subscriptionType coursevo.SubscriptionType, trialPeriodDays *uint, period *vo.PeriodToken, anchor time.Time) (Window, error) {
	w := Window{Start: anchor}

	switch {
	case subscriptionType.IsTrial() && trialPeriodDays != nil:
		end := anchor.AddDate(0, 0, int(*trialPeriodDays))
		w.End = &end
	case subscriptionType.IsPaid() && period != nil:
		if !period.IsValid() {
			return Window{}, fmt.Errorf("%w: %s", ErrInvalidPeriodToken, *period)
		}
		end := period.AddTo(anchor)
		w.End = &end
	default:
		// Unbounded: paid without a period token (legacy contract), free,
		// trial without a configured day count, or no subscription model.
	}

	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}
