package access

import vo "github.com/edulane/edulane/internal/domain/access/valueobjects"

// Decision is the outcome of an access check. Reason stays specific enough
// for the client to distinguish "you had access" from "you never had access".
type Decision struct {
	Granted bool            `json:"granted"`
	Reason  vo.DenialReason `json:"reason"`
}

// Granted returns an allowing decision.
func Granted() Decision {
	return Decision{Granted: true, Reason: vo.ReasonGranted}
}

// Denied returns a denying decision with the given reason.
func Denied(reason vo.DenialReason) Decision {
	return Decision{Granted: false, Reason: reason}
}
