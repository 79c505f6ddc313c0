package client

import (
	"testing"

	"github.com/Devleaps/agent-policies/internal/config"
	"github.com/Devleaps/agent-policies/internal/core"
)

func TestFallbackBehaviors(t *testing.T) {
	tests := []struct {
		name       string
		behavior   config.Behavior
		decision   core.Decision
		wantReason bool
	}{
		{"allow fails open silently", config.BehaviorAllow, core.Allow, false},
		{"deny fails closed with a generic reason", config.BehaviorDeny, core.Deny, true},
		{"ask fails safe to a human decision", config.BehaviorAsk, core.Ask, true},
		{"unknown behavior degrades to ask", config.Behavior("bogus"), core.Ask, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Fallback(tt.behavior)
			if resp.Decision != tt.decision {
				t.Errorf("expected decision %q, got %q", tt.decision, resp.Decision)
			}
			if tt.wantReason && resp.Reason == "" {
				t.Error("expected a reason explaining the degraded decision")
			}
			if !tt.wantReason && resp.Reason != "" {
				t.Errorf("expected no reason, got %q", resp.Reason)
			}
			if resp.Guidance != "" {
				t.Errorf("fallback must not fabricate guidance, got %q", resp.Guidance)
			}
		})
	}
}

// Degraded evaluation combined with rendering: the operator's configured
// behavior decides the exit code when the server cannot be reached.
func TestFallbackRenderedExitCodes(t *testing.T) {
	tests := []struct {
		behavior config.Behavior
		wantExit int
	}{
		{config.BehaviorAllow, 0},
		{config.BehaviorDeny, ExitBlocked},
		{config.BehaviorAsk, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.behavior), func(t *testing.T) {
			rendered := Render(core.ClaudeCode, core.PreToolUseEvent, Fallback(tt.behavior))
			if rendered.ExitCode != tt.wantExit {
				t.Errorf("behavior %q: expected exit %d, got %d", tt.behavior, tt.wantExit, rendered.ExitCode)
			}
		})
	}
}
