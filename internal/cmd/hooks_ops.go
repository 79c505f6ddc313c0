package cmd

import (
	"github.com/Devleaps/agent-policies/internal/platform"
)

// installHooks registers command for every event of the platform in the hook
// file at path. It returns the events that were added. When nothing changed
// the file is not rewritten, which keeps repeated installs byte-identical.
func installHooks(p platform.Platform, path, command string) ([]string, error) {
	hookFile, err := p.Load(path)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, event := range p.Events() {
		if hookFile.AddEntry(event, command) {
			added = append(added, event)
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := hookFile.Save(path); err != nil {
		return nil, err
	}
	return added, nil
}

// uninstallHooks removes every hook entry matching one of the command
// candidates from the hook file at path. It returns the number of entries
// removed. A file with no matching entries is left alone.
func uninstallHooks(p platform.Platform, path string, commands []string) (int, error) {
	hookFile, err := p.Load(path)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, command := range commands {
		removed += hookFile.RemoveEntry(command)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := hookFile.Save(path); err != nil {
		return 0, err
	}
	return removed, nil
}
