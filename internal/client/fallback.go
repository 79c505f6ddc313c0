package client

import (
	"github.com/Devleaps/agent-policies/internal/config"
	"github.com/Devleaps/agent-policies/internal/core"
)

// Fallback maps a failed policy evaluation to a local verdict according to
// the operator's configured default behavior. It is a pure function so the
// fail-open/fail-safe choice is testable without any network dependency.
func Fallback(behavior config.Behavior) *Response {
	switch behavior {
	case config.BehaviorAllow:
		return &Response{Decision: core.Allow}
	case config.BehaviorDeny:
		return &Response{
			Decision: core.Deny,
			Reason:   "policy server unavailable; denying per configured default",
		}
	default:
		// Ask is the documented default: surface the failure to a human
		// rather than silently failing open or closed.
		return &Response{
			Decision: core.Ask,
			Reason:   "policy server unavailable; requesting confirmation per configured default",
		}
	}
}
