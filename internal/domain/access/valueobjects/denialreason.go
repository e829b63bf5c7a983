package valueobjects

// DenialReason explains the outcome of an access check. The reasons stay
// distinguishable all the way to the edge so clients can render "request
// access" vs "renew your subscription" vs "wait for approval".
type DenialReason string

const (
	// ReasonGranted marks an allowed check; Decision.Granted is the authority.
	ReasonGranted DenialReason = "granted"
	// ReasonNoRecord means the student never requested access.
	ReasonNoRecord DenialReason = "no_record"
	// ReasonPending means a request exists but has not been decided.
	ReasonPending DenialReason = "pending"
	// ReasonRejected means the request was declined.
	ReasonRejected DenialReason = "rejected"
	// ReasonExpired means access existed but the window has closed.
	ReasonExpired DenialReason = "expired"
	// ReasonNotStarted means the window has not opened yet.
	ReasonNotStarted DenialReason = "not_started"
)

func (r DenialReason) String() string {
	return string(r)
}

var ValidDenialReasons = map[DenialReason]bool{
	ReasonGranted:    true,
	ReasonNoRecord:   true,
	ReasonPending:    true,
	ReasonRejected:   true,
	ReasonExpired:    true,
	ReasonNotStarted: true,
}
