package constants

// Application constants - single source of truth for naming throughout the codebase
const (
	// Core application identity
	AppName    = "Agent Policies"
	BinaryName = "agent-policies"

	// Module and repository
	ModulePath = "github.com/Devleaps/agent-policies"

	// Client configuration layers
	ConfigDirName      = ".agent-policies"
	ConfigFileNameJSON = "config.json"
	ConfigFileNameYAML = "config.yaml"

	// Native editor hook files
	ClaudeDirName          = ".claude"
	ClaudeSettingsFileName = "settings.json"
	CursorDirName          = ".cursor"
	CursorHooksFileName    = "hooks.json"

	// Server defaults and overrides
	DefaultServerURL = "http://localhost:8338"
	ServerURLEnvVar  = "HOOK_SERVER_URL"

	// Relay debug logging
	DebugLogEnvVar = "AGENT_POLICIES_LOG"
	LogsSubDir     = "logs"
	ClientLogFile  = "client.log"
)
