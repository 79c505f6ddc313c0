package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"

	"github.com/Devleaps/agent-policies/internal/constants"
	"github.com/Devleaps/agent-policies/internal/core"
)

// Behavior selects what the relay does when the policy server cannot decide.
type Behavior string

// All fallback behaviors
const (
	BehaviorAllow Behavior = "allow"
	BehaviorDeny  Behavior = "deny"
	BehaviorAsk   Behavior = "ask"
)

// IsValidBehavior reports whether s names a known fallback behavior.
func IsValidBehavior(s string) bool {
	switch Behavior(s) {
	case BehaviorAllow, BehaviorDeny, BehaviorAsk:
		return true
	}
	return false
}

// Effective is the resolved configuration for one invocation.
type Effective struct {
	Bundles               []string
	Editor                core.Editor
	ServerURL             string
	DefaultPolicyBehavior Behavior

	// Layer files that were actually found, for diagnostics.
	UserFile    string
	ProjectFile string
}

// layer holds one configuration file's contents. Pointer fields distinguish
// "unset" from "set to a zero value" so that merging is field-by-field.
type layer struct {
	Bundles               *[]string `json:"bundles" yaml:"bundles"`
	Editor                *string   `json:"editor" yaml:"editor"`
	ServerURL             *string   `json:"server_url" yaml:"server_url"`
	DefaultPolicyBehavior *string   `json:"default_policy_behavior" yaml:"default_policy_behavior"`
}

// Resolve loads and merges the user-level and project-level configuration.
// It never fails: a missing layer is empty, a malformed layer is empty plus
// a warning, and unset fields fall back to the documented defaults.
func Resolve(log zerolog.Logger) *Effective {
	userDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		userDir = filepath.Join(home, constants.ConfigDirName)
	}
	projectDir := ""
	if cwd, err := os.Getwd(); err == nil {
		projectDir = filepath.Join(cwd, constants.ConfigDirName)
	}
	return ResolveFrom(userDir, projectDir, log)
}

// ResolveFrom resolves configuration from explicit layer directories.
// An empty directory path skips that layer.
func ResolveFrom(userDir, projectDir string, log zerolog.Logger) *Effective {
	eff := &Effective{
		Bundles:               []string{},
		Editor:                core.ClaudeCode,
		ServerURL:             constants.DefaultServerURL,
		DefaultPolicyBehavior: BehaviorAsk,
	}

	user, userFile := loadLayer(userDir, log)
	project, projectFile := loadLayer(projectDir, log)
	eff.UserFile = userFile
	eff.ProjectFile = projectFile

	// User layer first, then project layer overrides field-by-field.
	applyLayer(eff, user, log)
	applyLayer(eff, project, log)

	if url := os.Getenv(constants.ServerURLEnvVar); url != "" {
		eff.ServerURL = url
	}

	eff.Bundles = dedupe(eff.Bundles)
	return eff
}

// loadLayer reads one configuration layer directory, preferring config.json
// and falling back to config.yaml. Missing files yield an empty layer;
// unreadable or malformed files yield an empty layer plus a warning.
func loadLayer(dir string, log zerolog.Logger) (layer, string) {
	var l layer
	if dir == "" {
		return l, ""
	}

	jsonPath := filepath.Join(dir, constants.ConfigFileNameJSON)
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, &l); err != nil {
			log.Warn().Str("file", jsonPath).Err(err).Msg("ignoring malformed config layer")
			return layer{}, ""
		}
		return l, jsonPath
	} else if !os.IsNotExist(err) {
		log.Warn().Str("file", jsonPath).Err(err).Msg("ignoring unreadable config layer")
		return layer{}, ""
	}

	yamlPath := filepath.Join(dir, constants.ConfigFileNameYAML)
	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, &l); err != nil {
			log.Warn().Str("file", yamlPath).Err(err).Msg("ignoring malformed config layer")
			return layer{}, ""
		}
		return l, yamlPath
	} else if !os.IsNotExist(err) {
		log.Warn().Str("file", yamlPath).Err(err).Msg("ignoring unreadable config layer")
		return layer{}, ""
	}

	return l, ""
}

// applyLayer overlays one layer onto the effective configuration. List-valued
// fields are replaced wholesale, never concatenated.
func applyLayer(eff *Effective, l layer, log zerolog.Logger) {
	if l.Bundles != nil {
		eff.Bundles = *l.Bundles
	}
	if l.Editor != nil {
		if editor, err := core.ParseEditor(*l.Editor); err == nil {
			eff.Editor = editor
		} else {
			log.Warn().Err(err).Msg("ignoring invalid editor in config")
		}
	}
	if l.ServerURL != nil && *l.ServerURL != "" {
		eff.ServerURL = *l.ServerURL
	}
	if l.DefaultPolicyBehavior != nil {
		if IsValidBehavior(*l.DefaultPolicyBehavior) {
			eff.DefaultPolicyBehavior = Behavior(*l.DefaultPolicyBehavior)
		} else {
			log.Warn().Str("value", *l.DefaultPolicyBehavior).
				Msg("ignoring invalid default_policy_behavior in config (valid: allow, deny, ask)")
		}
	}
}

// dedupe removes duplicate bundle names, keeping the first occurrence.
func dedupe(bundles []string) []string {
	seen := make(map[string]bool, len(bundles))
	result := make([]string, 0, len(bundles))
	for _, b := range bundles {
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		result = append(result, b)
	}
	return result
}

// UserConfigDir returns the user-level configuration directory path.
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}
	return filepath.Join(home, constants.ConfigDirName), nil
}
