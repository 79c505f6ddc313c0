// Package platform abstracts the native hook-configuration files of the
// supported editors so that install and uninstall share one code path.
package platform

import "github.com/Devleaps/agent-policies/internal/core"

// HookFile is one native hook-configuration file loaded into memory.
// Implementations must preserve unrelated file content across a load/save
// round trip.
type HookFile interface {
	// AddEntry ensures exactly one hook entry invoking command exists for
	// the event. It reports whether the file changed.
	AddEntry(event, command string) bool

	// RemoveEntry removes every hook entry whose command equals command,
	// pruning containers that become empty. It returns the number of
	// entries removed.
	RemoveEntry(command string) int

	// HasEntry reports whether a hook entry invoking command exists for
	// the event.
	HasEntry(event, command string) bool

	// Save writes the file back to path, preserving unrelated content.
	Save(path string) error
}

// Platform describes one editor's hook integration.
type Platform interface {
	// Editor returns the editor this platform serves.
	Editor() core.Editor

	// DisplayName returns the human-readable editor name.
	DisplayName() string

	// ConfigPath returns the hook file path. Global selects the user-level
	// file under the home directory; otherwise the project-level file under
	// the current directory is used.
	ConfigPath(global bool) (string, error)

	// Events returns the hook event names this client registers, in order.
	Events() []string

	// Load reads the hook file at path. A missing file yields an empty
	// structure; invalid JSON is an error so the file is never clobbered.
	Load(path string) (HookFile, error)
}
