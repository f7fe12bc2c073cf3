package ports

import "context"

// Denial reasons reported by the protection guard.
const (
	ReasonBot       = "bot"
	ReasonShield    = "shield"
	ReasonRateLimit = "rate-limit"
)

// ProtectionRequest describes an inbound request for the protection guard.
// Role is best-effort: "guest" when the request carries no usable session.
type ProtectionRequest struct {
	IP        string
	Method    string
	Path      string
	UserAgent string
	Role      string
}

// Decision is the guard's verdict. Reason is set only when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  string
}

// Guard gates requests before they reach the handlers: bot detection,
// shield rules, and role-derived rate limiting.
type Guard interface {
	Check(ctx context.Context, req ProtectionRequest) (Decision, error)
}
