package core

import "fmt"

// Editor identifies a supported AI editor integration.
type Editor string

// All supported editors
const (
	ClaudeCode Editor = "claude-code"
	Cursor     Editor = "cursor"
)

// ParseEditor validates an editor name from configuration or the command line.
func ParseEditor(name string) (Editor, error) {
	switch Editor(name) {
	case ClaudeCode, Cursor:
		return Editor(name), nil
	default:
		return "", fmt.Errorf("unknown editor %q (valid: %s, %s)", name, ClaudeCode, Cursor)
	}
}

// Claude Code hook event names
const (
	PreToolUseEvent       = "PreToolUse"
	PostToolUseEvent      = "PostToolUse"
	UserPromptSubmitEvent = "UserPromptSubmit"
	StopEvent             = "Stop"
	SubagentStopEvent     = "SubagentStop"
	NotificationEvent     = "Notification"
	PreCompactEvent       = "PreCompact"
	SessionStartEvent     = "SessionStart"
	SessionEndEvent       = "SessionEnd"
)

// Cursor hook event names
const (
	BeforeShellExecutionEvent = "beforeShellExecution"
	BeforeMCPExecutionEvent   = "beforeMCPExecution"
	AfterFileEditEvent        = "afterFileEdit"
	BeforeReadFileEvent       = "beforeReadFile"
	BeforeSubmitPromptEvent   = "beforeSubmitPrompt"
	CursorStopEvent           = "stop"
)

// HookEvent describes one editor hook event with metadata for listing.
type HookEvent struct {
	Name        string
	Description string
}

// ClaudeCodeEvents returns the Claude Code hook events this client registers for,
// in registration order.
func ClaudeCodeEvents() []HookEvent {
	return []HookEvent{
		{PreToolUseEvent, "Runs after tool parameters are created and before the tool call executes"},
		{PostToolUseEvent, "Runs immediately after a tool completes successfully"},
		{UserPromptSubmitEvent, "Runs when the user submits a prompt, before the agent processes it"},
		{StopEvent, "Runs when the main agent has finished responding"},
		{SubagentStopEvent, "Runs when a subagent (Task tool call) has finished responding"},
		{NotificationEvent, "Runs when the agent needs permission or input has been idle"},
		{PreCompactEvent, "Runs before a conversation compact operation"},
		{SessionStartEvent, "Runs when a session starts or resumes"},
		{SessionEndEvent, "Runs when a session ends"},
	}
}

// CursorEvents returns the Cursor hook events this client registers for,
// in registration order.
func CursorEvents() []HookEvent {
	return []HookEvent{
		{BeforeShellExecutionEvent, "Runs before a shell command executes"},
		{BeforeMCPExecutionEvent, "Runs before an MCP tool call executes"},
		{AfterFileEditEvent, "Runs after a file has been edited"},
		{BeforeReadFileEvent, "Runs before a file is read into context"},
		{BeforeSubmitPromptEvent, "Runs when the user submits a prompt"},
		{CursorStopEvent, "Runs when the agent loop stops"},
	}
}

// EventsFor returns the hook event names registered for the given editor.
func EventsFor(editor Editor) []string {
	var events []HookEvent
	switch editor {
	case Cursor:
		events = CursorEvents()
	default:
		events = ClaudeCodeEvents()
	}
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

// IsValidEvent reports whether the event name is one this client registers
// for the given editor.
func IsValidEvent(editor Editor, name string) bool {
	for _, e := range EventsFor(editor) {
		if e == name {
			return true
		}
	}
	return false
}
