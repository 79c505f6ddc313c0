package client

import (
	"encoding/json"

	"github.com/Devleaps/agent-policies/internal/core"
)

// EditorResponse is the rendered hook response handed back to the invoking
// editor: stdout carries the hook-protocol JSON, stderr carries blocking
// reasons where the editor's convention expects them there, and the exit
// code signals allow versus block.
type EditorResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExitBlocked is the exit code Claude Code interprets as a blocking hook
// result, with stderr fed back to the agent.
const ExitBlocked = 2

// claudeHookSpecificOutput is the permission section of a Claude Code hook
// response.
type claudeHookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
}

// claudeOutput is the JSON shape Claude Code reads from hook stdout.
type claudeOutput struct {
	Continue           *bool                     `json:"continue,omitempty"`
	StopReason         string                    `json:"stopReason,omitempty"`
	SystemMessage      string                    `json:"systemMessage,omitempty"`
	HookSpecificOutput *claudeHookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// cursorOutput is the JSON shape Cursor reads from hook stdout.
type cursorOutput struct {
	Permission   string `json:"permission,omitempty"`
	UserMessage  string `json:"userMessage,omitempty"`
	AgentMessage string `json:"agentMessage,omitempty"`
	Continue     *bool  `json:"continue,omitempty"`
}

// Render translates a policy verdict into the hook response for the given
// editor and event. Guidance is supplementary: it rides along in the
// response but never changes the exit code.
func Render(editor core.Editor, event string, resp *Response) EditorResponse {
	if editor == core.Cursor {
		return renderCursor(event, resp)
	}
	return renderClaude(event, resp)
}

func renderClaude(event string, resp *Response) EditorResponse {
	switch resp.Decision {
	case core.Deny:
		// Claude Code's blocking convention: exit 2 with the reason on
		// stderr, which is fed back to the agent.
		reason := resp.Reason
		if reason == "" {
			reason = "blocked by policy"
		}
		if resp.Guidance != "" {
			reason += "\n" + resp.Guidance
		}
		return EditorResponse{Stderr: reason, ExitCode: ExitBlocked}

	case core.Halt:
		cont := false
		return marshalClaude(claudeOutput{
			Continue:      &cont,
			StopReason:    resp.Reason,
			SystemMessage: resp.Guidance,
		})

	case core.Ask:
		if event == core.PreToolUseEvent {
			return marshalClaude(claudeOutput{
				SystemMessage: resp.Guidance,
				HookSpecificOutput: &claudeHookSpecificOutput{
					HookEventName:            event,
					PermissionDecision:       "ask",
					PermissionDecisionReason: resp.Reason,
				},
			})
		}
		// Only PreToolUse supports a permission prompt; elsewhere the best
		// non-blocking degradation is to continue and surface the reason.
		msg := resp.Reason
		if resp.Guidance != "" {
			msg = resp.Guidance
		}
		return marshalClaude(claudeOutput{SystemMessage: msg})

	default: // allow
		if event == core.PreToolUseEvent {
			return marshalClaude(claudeOutput{
				SystemMessage: resp.Guidance,
				HookSpecificOutput: &claudeHookSpecificOutput{
					HookEventName:            event,
					PermissionDecision:       "allow",
					PermissionDecisionReason: resp.Reason,
				},
			})
		}
		return marshalClaude(claudeOutput{SystemMessage: resp.Guidance})
	}
}

func renderCursor(event string, resp *Response) EditorResponse {
	out := cursorOutput{
		UserMessage:  resp.Reason,
		AgentMessage: resp.Guidance,
	}

	exitCode := 0
	switch resp.Decision {
	case core.Deny:
		out.Permission = "deny"
		if out.UserMessage == "" {
			out.UserMessage = "blocked by policy"
		}
		exitCode = ExitBlocked
	case core.Halt:
		out.Permission = "deny"
		cont := false
		out.Continue = &cont
	case core.Ask:
		out.Permission = "ask"
	default:
		out.Permission = "allow"
	}

	if event == core.BeforeSubmitPromptEvent && resp.Decision.Blocking() {
		cont := false
		out.Continue = &cont
	}

	data, err := json.Marshal(out)
	if err != nil {
		return EditorResponse{Stdout: `{"permission":"ask"}`}
	}
	// Cursor blocks via the permission field; the deny exit code is kept
	// non-zero as well so scripted invocations can distinguish the outcome.
	return EditorResponse{Stdout: string(data), ExitCode: exitCode}
}

func marshalClaude(out claudeOutput) EditorResponse {
	data, err := json.Marshal(out)
	if err != nil {
		return EditorResponse{Stdout: "{}"}
	}
	return EditorResponse{Stdout: string(data)}
}
