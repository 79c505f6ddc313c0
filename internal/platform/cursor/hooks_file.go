// Package cursor manages hook registrations in Cursor hooks.json files,
// which map event names to flat command lists with no matcher concept.
package cursor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Devleaps/agent-policies/internal/constants"
	"github.com/Devleaps/agent-policies/internal/core"
	"github.com/Devleaps/agent-policies/internal/platform"
)

// CurrentVersion is the hooks.json schema version this client writes.
const CurrentVersion = 1

// HookDef is a single hook definition in the config
type HookDef struct {
	Command string `json:"command"`
}

// HooksFile is a Cursor hooks.json file held in memory. Top-level keys
// other than "version" and "hooks" are carried through untouched.
type HooksFile struct {
	Version int                    `json:"version"`
	Hooks   map[string][]HookDef   `json:"hooks"`
	Other   map[string]interface{} `json:"-"`
}

// Load reads a hooks.json file. A missing file yields an empty config with
// the current schema version; invalid JSON is an error so existing content
// is never overwritten.
func Load(path string) (*HooksFile, error) {
	f := &HooksFile{
		Version: CurrentVersion,
		Hooks:   make(map[string][]HookDef),
		Other:   make(map[string]interface{}),
	}

	data, err := os.ReadFile(path) // #nosec G304 - controlled hooks paths
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read hooks file: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse hooks JSON: %v", err)
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse hooks file: %v", err)
	}
	delete(raw, "version")
	delete(raw, "hooks")
	f.Other = raw

	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Hooks == nil {
		f.Hooks = make(map[string][]HookDef)
	}
	return f, nil
}

// AddEntry ensures a single hook entry invoking command exists for the
// event. It reports whether the file changed.
func (f *HooksFile) AddEntry(event, command string) bool {
	if f.HasEntry(event, command) {
		return false
	}
	f.Hooks[event] = append(f.Hooks[event], HookDef{Command: command})
	return true
}

// RemoveEntry removes every hook entry whose command equals command, across
// all events. Events whose command list becomes empty are dropped.
func (f *HooksFile) RemoveEntry(command string) int {
	removed := 0
	for event, hooks := range f.Hooks {
		var kept []HookDef
		for _, hook := range hooks {
			if hook.Command == command {
				removed++
				continue
			}
			kept = append(kept, hook)
		}
		if len(kept) == 0 {
			delete(f.Hooks, event)
		} else {
			f.Hooks[event] = kept
		}
	}
	return removed
}

// HasEntry reports whether a hook entry invoking command exists for the event.
func (f *HooksFile) HasEntry(event, command string) bool {
	for _, hook := range f.Hooks[event] {
		if hook.Command == command {
			return true
		}
	}
	return false
}

// Save writes the hooks file back, merging with the preserved unknown fields.
func (f *HooksFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %v", err)
	}

	output := make(map[string]interface{}, len(f.Other)+2)
	for k, v := range f.Other {
		output[k] = v
	}
	output["version"] = f.Version
	output["hooks"] = f.Hooks

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal hooks file: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write hooks file: %v", err)
	}
	return nil
}

// Platform implements platform.Platform for Cursor.
type Platform struct{}

// New creates the Cursor platform.
func New() *Platform { return &Platform{} }

// Editor returns the editor identifier.
func (p *Platform) Editor() core.Editor { return core.Cursor }

// DisplayName returns the human-readable editor name.
func (p *Platform) DisplayName() string { return "Cursor" }

// ConfigPath returns the hooks.json path for the chosen scope.
func (p *Platform) ConfigPath(global bool) (string, error) {
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %v", err)
		}
		return filepath.Join(home, constants.CursorDirName, constants.CursorHooksFileName), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %v", err)
	}
	return filepath.Join(cwd, constants.CursorDirName, constants.CursorHooksFileName), nil
}

// Events returns the Cursor hook events this client registers.
func (p *Platform) Events() []string { return core.EventsFor(core.Cursor) }

// Load reads the hooks file at path.
func (p *Platform) Load(path string) (platform.HookFile, error) {
	return Load(path)
}
