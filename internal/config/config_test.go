package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Devleaps/agent-policies/internal/constants"
	"github.com/Devleaps/agent-policies/internal/core"
)

func writeLayer(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create layer dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write layer file: %v", err)
	}
	return path
}

func testLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

func TestResolveDefaults(t *testing.T) {
	var buf bytes.Buffer
	eff := ResolveFrom("", "", testLogger(&buf))

	if len(eff.Bundles) != 0 {
		t.Errorf("expected no bundles, got %v", eff.Bundles)
	}
	if eff.Editor != core.ClaudeCode {
		t.Errorf("expected default editor claude-code, got %q", eff.Editor)
	}
	if eff.ServerURL != constants.DefaultServerURL {
		t.Errorf("expected default server URL %q, got %q", constants.DefaultServerURL, eff.ServerURL)
	}
	if eff.DefaultPolicyBehavior != BehaviorAsk {
		t.Errorf("expected default behavior ask, got %q", eff.DefaultPolicyBehavior)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no warnings for missing layers, got %q", buf.String())
	}
}

func TestProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "user")
	projectDir := filepath.Join(tempDir, "project")

	writeLayer(t, userDir, constants.ConfigFileNameJSON, `{
		"bundles": ["python-quality", "git-workflow"],
		"editor": "cursor",
		"server_url": "http://user.example:9999",
		"default_policy_behavior": "deny"
	}`)
	writeLayer(t, projectDir, constants.ConfigFileNameJSON, `{
		"bundles": ["terraform"],
		"editor": "claude-code"
	}`)

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, projectDir, testLogger(&buf))

	// Project bundles replace the user list wholesale, never concatenate.
	if !reflect.DeepEqual(eff.Bundles, []string{"terraform"}) {
		t.Errorf("expected project bundles to replace user bundles, got %v", eff.Bundles)
	}
	if eff.Editor != core.ClaudeCode {
		t.Errorf("expected project editor to win, got %q", eff.Editor)
	}
	// Fields unset at the project level fall through to the user layer.
	if eff.ServerURL != "http://user.example:9999" {
		t.Errorf("expected user server URL to survive, got %q", eff.ServerURL)
	}
	if eff.DefaultPolicyBehavior != BehaviorDeny {
		t.Errorf("expected user behavior to survive, got %q", eff.DefaultPolicyBehavior)
	}
}

func TestBundlesDeduplicatedKeepingFirst(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "user")
	writeLayer(t, userDir, constants.ConfigFileNameJSON,
		`{"bundles": ["terraform", "uv", "terraform", "", "uv"]}`)

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, "", testLogger(&buf))

	if !reflect.DeepEqual(eff.Bundles, []string{"terraform", "uv"}) {
		t.Errorf("expected deduplicated bundles in first-seen order, got %v", eff.Bundles)
	}
}

func TestMalformedProjectLayerFallsBackToUser(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "user")
	projectDir := filepath.Join(tempDir, "project")

	writeLayer(t, userDir, constants.ConfigFileNameJSON, `{"bundles": ["git-workflow"], "editor": "cursor"}`)
	writeLayer(t, projectDir, constants.ConfigFileNameJSON, `{not valid json`)

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, projectDir, testLogger(&buf))

	if !reflect.DeepEqual(eff.Bundles, []string{"git-workflow"}) {
		t.Errorf("expected user bundles to apply, got %v", eff.Bundles)
	}
	if eff.Editor != core.Cursor {
		t.Errorf("expected user editor to apply, got %q", eff.Editor)
	}
	if !strings.Contains(buf.String(), "malformed") {
		t.Errorf("expected a warning about the malformed layer, got %q", buf.String())
	}
}

func TestYAMLLayerFallback(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "user")
	writeLayer(t, userDir, constants.ConfigFileNameYAML, "bundles:\n  - terraform\neditor: cursor\n")

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, "", testLogger(&buf))

	if !reflect.DeepEqual(eff.Bundles, []string{"terraform"}) {
		t.Errorf("expected bundles from YAML layer, got %v", eff.Bundles)
	}
	if eff.Editor != core.Cursor {
		t.Errorf("expected editor from YAML layer, got %q", eff.Editor)
	}
}

func TestJSONLayerPreferredOverYAML(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "user")
	writeLayer(t, userDir, constants.ConfigFileNameJSON, `{"editor": "claude-code"}`)
	writeLayer(t, userDir, constants.ConfigFileNameYAML, "editor: cursor\n")

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, "", testLogger(&buf))

	if eff.Editor != core.ClaudeCode {
		t.Errorf("expected JSON layer to take precedence over YAML, got %q", eff.Editor)
	}
}

func TestServerURLEnvOverride(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "project")
	writeLayer(t, projectDir, constants.ConfigFileNameJSON, `{"server_url": "http://project.example:1111"}`)
	t.Setenv(constants.ServerURLEnvVar, "http://env.example:2222")

	var buf bytes.Buffer
	eff := ResolveFrom("", projectDir, testLogger(&buf))

	if eff.ServerURL != "http://env.example:2222" {
		t.Errorf("expected env var to override all layers, got %q", eff.ServerURL)
	}
}

func TestInvalidFieldValuesIgnoredWithWarning(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "user")
	writeLayer(t, userDir, constants.ConfigFileNameJSON,
		`{"editor": "vscode", "default_policy_behavior": "explode"}`)

	var buf bytes.Buffer
	eff := ResolveFrom(userDir, "", testLogger(&buf))

	if eff.Editor != core.ClaudeCode {
		t.Errorf("expected invalid editor to fall back to default, got %q", eff.Editor)
	}
	if eff.DefaultPolicyBehavior != BehaviorAsk {
		t.Errorf("expected invalid behavior to fall back to default, got %q", eff.DefaultPolicyBehavior)
	}
	warnings := buf.String()
	if !strings.Contains(warnings, "editor") || !strings.Contains(warnings, "default_policy_behavior") {
		t.Errorf("expected warnings for both invalid fields, got %q", warnings)
	}
}
