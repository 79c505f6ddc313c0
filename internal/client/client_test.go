package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Devleaps/agent-policies/internal/core"
)

func TestEvaluateSendsWrappedEventToEditorRoute(t *testing.T) {
	var gotPath string
	var gotBody Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Response{Decision: core.Allow})
	}))
	defer server.Close()

	payload := []byte(`{"hook_event_name": "PreToolUse", "tool_name": "Bash"}`)
	resp, err := New(server.URL).Evaluate(context.Background(), core.ClaudeCode, "PreToolUse", []string{"terraform"}, payload)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if gotPath != "/policy/claude-code/PreToolUse" {
		t.Errorf("expected editor-scoped route, got %q", gotPath)
	}
	if len(gotBody.Bundles) != 1 || gotBody.Bundles[0] != "terraform" {
		t.Errorf("expected bundles [terraform], got %v", gotBody.Bundles)
	}
	var event map[string]interface{}
	if err := json.Unmarshal(gotBody.Event, &event); err != nil {
		t.Fatalf("event payload not forwarded as JSON: %v", err)
	}
	if event["tool_name"] != "Bash" {
		t.Errorf("event payload was not passed through, got %v", event)
	}
	if resp.Decision != core.Allow {
		t.Errorf("expected allow, got %q", resp.Decision)
	}
}

func TestEvaluateSurfacesDenyReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		hasTerraform := false
		for _, b := range req.Bundles {
			if b == "terraform" {
				hasTerraform = true
			}
		}
		if !hasTerraform {
			_ = json.NewEncoder(w).Encode(Response{Decision: core.Allow})
			return
		}
		_ = json.NewEncoder(w).Encode(Response{
			Decision: core.Deny,
			Reason:   "terraform apply is not allowed. Use `terraform plan` instead.",
		})
	}))
	defer server.Close()

	payload := []byte(`{"hook_event_name": "PreToolUse", "tool_name": "Bash", "tool_input": {"command": "terraform apply"}}`)
	resp, err := New(server.URL).Evaluate(context.Background(), core.ClaudeCode, "PreToolUse", []string{"terraform"}, payload)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	rendered := Render(core.ClaudeCode, "PreToolUse", resp)
	if rendered.ExitCode == 0 {
		t.Error("denied tool use must exit non-zero")
	}
	if !strings.Contains(rendered.Stderr, "terraform plan") {
		t.Errorf("expected server reason on stderr, got %q", rendered.Stderr)
	}
}

func TestEvaluateServerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).Evaluate(context.Background(), core.ClaudeCode, "PreToolUse", nil, []byte(`{}`))
	if err == nil {
		t.Fatal("expected an error for HTTP 500, got none")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestEvaluateMalformedDecision(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>nope</html>`},
		{"unknown decision", `{"decision": "maybe"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Evaluate(context.Background(), core.ClaudeCode, "PreToolUse", nil, []byte(`{}`))
			if err == nil {
				t.Fatal("expected an error for malformed response, got none")
			}
		})
	}
}

func TestEvaluateUnreachableServer(t *testing.T) {
	// Port from a closed listener: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url).Evaluate(context.Background(), core.ClaudeCode, "PreToolUse", nil, []byte(`{}`))
	if err == nil {
		t.Fatal("expected an error for unreachable server, got none")
	}
}

func TestEvaluateHonorsContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(Response{Decision: core.Allow})
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New(server.URL).Evaluate(ctx, core.ClaudeCode, "PreToolUse", nil, []byte(`{}`))
	if err == nil {
		t.Fatal("expected a timeout error, got none")
	}
	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		t.Errorf("Evaluate did not respect the context deadline, took %v", elapsed)
	}
}
