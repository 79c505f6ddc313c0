package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Devleaps/agent-policies/internal/client"
	"github.com/Devleaps/agent-policies/internal/config"
	"github.com/Devleaps/agent-policies/internal/core"
)

// relayAction handles one hook event end to end. Transport and input
// problems never escape as crashes: they resolve to the configured default
// behavior so the editor always gets a well-formed response.
func relayAction(ctx context.Context, cmd *cli.Command) error {
	stderr := config.NewStderrLogger()
	cfg := config.Resolve(stderr)

	editor := cfg.Editor
	if arg := cmd.Args().First(); arg != "" {
		parsed, err := core.ParseEditor(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		editor = parsed
	}

	bundles := cfg.Bundles
	if flagBundles := cmd.StringSlice("bundle"); len(flagBundles) > 0 {
		bundles = flagBundles
	}

	debug := cmd.Bool("log") || config.DebugLogEnabled()
	relayLog, closeLog := config.NewRelayLogger(debug, config.DefaultLogRotationConfig())

	start := time.Now()
	payload, readErr := io.ReadAll(os.Stdin)
	eventName := eventNameOf(payload)

	var resp *client.Response
	degraded := false
	switch {
	case readErr != nil:
		stderr.Warn().Err(readErr).Msg("failed to read hook event; applying default behavior")
		resp = client.Fallback(cfg.DefaultPolicyBehavior)
		degraded = true
	case eventName == "":
		stderr.Warn().Msg("hook event missing hook_event_name; applying default behavior")
		resp = client.Fallback(cfg.DefaultPolicyBehavior)
		degraded = true
	default:
		var err error
		resp, err = client.New(cfg.ServerURL).Evaluate(ctx, editor, eventName, bundles, payload)
		if err != nil {
			stderr.Warn().Err(err).
				Str("behavior", string(cfg.DefaultPolicyBehavior)).
				Msg("policy evaluation failed; applying default behavior")
			resp = client.Fallback(cfg.DefaultPolicyBehavior)
			degraded = true
		}
	}

	rendered := client.Render(editor, eventName, resp)

	relayLog.Info().
		Str("editor", string(editor)).
		Str("event", eventName).
		Strs("bundles", bundles).
		Str("decision", string(resp.Decision)).
		Bool("degraded", degraded).
		Int("exit_code", rendered.ExitCode).
		Dur("duration", time.Since(start)).
		Msg("relayed hook event")
	closeLog()

	if rendered.Stdout != "" {
		fmt.Fprintln(os.Stdout, rendered.Stdout)
	}
	if rendered.Stderr != "" {
		fmt.Fprintln(os.Stderr, rendered.Stderr)
	}
	if rendered.ExitCode != 0 {
		os.Exit(rendered.ExitCode)
	}
	return nil
}
