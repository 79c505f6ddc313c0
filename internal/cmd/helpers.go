package cmd

import (
	"encoding/json"
	"os"

	"github.com/Devleaps/agent-policies/internal/constants"
	"github.com/Devleaps/agent-policies/internal/core"
	"github.com/Devleaps/agent-policies/internal/platform"
	"github.com/Devleaps/agent-policies/internal/platform/claude"
	"github.com/Devleaps/agent-policies/internal/platform/cursor"
)

// platformFor returns the hook file editor for the given editor name.
func platformFor(editor core.Editor) platform.Platform {
	if editor == core.Cursor {
		return cursor.New()
	}
	return claude.New()
}

// parseEditorArg resolves the optional positional editor argument, defaulting
// to Claude Code.
func parseEditorArg(arg string) (core.Editor, error) {
	if arg == "" {
		return core.ClaudeCode, nil
	}
	return core.ParseEditor(arg)
}

// clientCommand returns the command string registered in hook files: the
// absolute path of this executable, falling back to the bare binary name.
func clientCommand() string {
	if execPath, err := os.Executable(); err == nil {
		return execPath
	}
	return constants.BinaryName
}

// removalCandidates lists the command strings uninstall matches against:
// the current executable path plus the bare binary name, so registrations
// written from a different install location are still found.
func removalCandidates() []string {
	candidates := []string{constants.BinaryName}
	if execPath, err := os.Executable(); err == nil && execPath != constants.BinaryName {
		candidates = append([]string{execPath}, candidates...)
	}
	return candidates
}

// eventNameOf extracts the hook_event_name field from a raw event payload.
// Returns the empty string when the payload is not valid JSON or the field
// is absent, without interpreting any other event content.
func eventNameOf(payload []byte) string {
	var probe struct {
		HookEventName string `json:"hook_event_name"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	return probe.HookEventName
}
