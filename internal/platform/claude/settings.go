// Package claude manages hook registrations in Claude Code settings.json
// files, which group hook commands by event name and matcher pattern.
package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Devleaps/agent-policies/internal/constants"
	"github.com/Devleaps/agent-policies/internal/core"
	"github.com/Devleaps/agent-policies/internal/platform"
)

// DefaultMatcher matches every tool for events that support matchers.
const DefaultMatcher = "*"

// HookCommand is one invocable hook inside a matcher group.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout *int   `json:"timeout,omitempty"`
}

// HookMatcher groups hook commands under a tool matcher pattern.
type HookMatcher struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
}

// HooksConfig is the hooks section of a Claude Code settings file.
type HooksConfig struct {
	PreToolUse       []HookMatcher `json:"PreToolUse,omitempty"`
	PostToolUse      []HookMatcher `json:"PostToolUse,omitempty"`
	UserPromptSubmit []HookMatcher `json:"UserPromptSubmit,omitempty"`
	Stop             []HookMatcher `json:"Stop,omitempty"`
	SubagentStop     []HookMatcher `json:"SubagentStop,omitempty"`
	Notification     []HookMatcher `json:"Notification,omitempty"`
	PreCompact       []HookMatcher `json:"PreCompact,omitempty"`
	SessionStart     []HookMatcher `json:"SessionStart,omitempty"`
	SessionEnd       []HookMatcher `json:"SessionEnd,omitempty"`
}

// slot returns the matcher list for an event name, or nil for events this
// client does not manage.
func (h *HooksConfig) slot(event string) *[]HookMatcher {
	switch event {
	case core.PreToolUseEvent:
		return &h.PreToolUse
	case core.PostToolUseEvent:
		return &h.PostToolUse
	case core.UserPromptSubmitEvent:
		return &h.UserPromptSubmit
	case core.StopEvent:
		return &h.Stop
	case core.SubagentStopEvent:
		return &h.SubagentStop
	case core.NotificationEvent:
		return &h.Notification
	case core.PreCompactEvent:
		return &h.PreCompact
	case core.SessionStartEvent:
		return &h.SessionStart
	case core.SessionEndEvent:
		return &h.SessionEnd
	}
	return nil
}

func (h *HooksConfig) empty() bool {
	for _, event := range core.EventsFor(core.ClaudeCode) {
		if len(*h.slot(event)) > 0 {
			return false
		}
	}
	return true
}

// SettingsFile is a Claude Code settings.json file held in memory.
// Top-level keys other than "hooks" are carried through untouched.
type SettingsFile struct {
	Hooks HooksConfig            `json:"hooks,omitempty"`
	Other map[string]interface{} `json:"-"`
}

// Load reads a settings file. A missing file yields empty settings so that
// install can create it; invalid JSON is an error so existing content is
// never overwritten.
func Load(path string) (*SettingsFile, error) {
	s := &SettingsFile{Other: make(map[string]interface{})}

	data, err := os.ReadFile(path) // #nosec G304 - controlled settings paths
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %v", err)
	}

	// Unmarshal into a generic map first to preserve unknown fields.
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %v", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %v", err)
	}
	delete(raw, "hooks")
	s.Other = raw

	return s, nil
}

// AddEntry ensures a single hook entry invoking command exists for the event
// under the default matcher. It reports whether the file changed.
func (s *SettingsFile) AddEntry(event, command string) bool {
	slot := s.Hooks.slot(event)
	if slot == nil || s.HasEntry(event, command) {
		return false
	}

	hook := HookCommand{Type: "command", Command: command}
	for i, matcher := range *slot {
		if matcher.Matcher == DefaultMatcher {
			(*slot)[i].Hooks = append((*slot)[i].Hooks, hook)
			return true
		}
	}
	*slot = append(*slot, HookMatcher{Matcher: DefaultMatcher, Hooks: []HookCommand{hook}})
	return true
}

// RemoveEntry removes every hook entry whose command equals command, across
// all events. Matcher groups that become empty are dropped; events whose
// group list becomes empty are dropped from the file.
func (s *SettingsFile) RemoveEntry(command string) int {
	removed := 0
	for _, event := range core.EventsFor(core.ClaudeCode) {
		slot := s.Hooks.slot(event)
		var kept []HookMatcher
		for _, matcher := range *slot {
			var hooks []HookCommand
			for _, hook := range matcher.Hooks {
				if hook.Command == command {
					removed++
					continue
				}
				hooks = append(hooks, hook)
			}
			if len(hooks) > 0 {
				matcher.Hooks = hooks
				kept = append(kept, matcher)
			}
		}
		*slot = kept
	}
	return removed
}

// HasEntry reports whether a hook entry invoking command exists for the event
// under any matcher.
func (s *SettingsFile) HasEntry(event, command string) bool {
	slot := s.Hooks.slot(event)
	if slot == nil {
		return false
	}
	for _, matcher := range *slot {
		for _, hook := range matcher.Hooks {
			if hook.Command == command {
				return true
			}
		}
	}
	return false
}

// Save writes the settings back, merging the hooks section with the
// preserved unknown fields.
func (s *SettingsFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %v", err)
	}

	output := make(map[string]interface{}, len(s.Other)+1)
	for k, v := range s.Other {
		output[k] = v
	}
	if !s.Hooks.empty() {
		output["hooks"] = s.Hooks
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %v", err)
	}
	return nil
}

// Platform implements platform.Platform for Claude Code.
type Platform struct{}

// New creates the Claude Code platform.
func New() *Platform { return &Platform{} }

// Editor returns the editor identifier.
func (p *Platform) Editor() core.Editor { return core.ClaudeCode }

// DisplayName returns the human-readable editor name.
func (p *Platform) DisplayName() string { return "Claude Code" }

// ConfigPath returns the settings.json path for the chosen scope.
func (p *Platform) ConfigPath(global bool) (string, error) {
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %v", err)
		}
		return filepath.Join(home, constants.ClaudeDirName, constants.ClaudeSettingsFileName), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %v", err)
	}
	return filepath.Join(cwd, constants.ClaudeDirName, constants.ClaudeSettingsFileName), nil
}

// Events returns the Claude Code hook events this client registers.
func (p *Platform) Events() []string { return core.EventsFor(core.ClaudeCode) }

// Load reads the settings file at path.
func (p *Platform) Load(path string) (platform.HookFile, error) {
	return Load(path)
}
