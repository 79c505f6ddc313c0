package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Devleaps/agent-policies/internal/core"
)

// NewEventsCmd lists the hook events this client registers per editor.
func NewEventsCmd() *cli.Command {
	return &cli.Command{
		Name:      "events",
		Usage:     "List the hook events registered for an editor",
		ArgsUsage: "[claude-code|cursor]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			editor, err := parseEditorArg(cmd.Args().First())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			var events []core.HookEvent
			if editor == core.Cursor {
				events = core.CursorEvents()
			} else {
				events = core.ClaudeCodeEvents()
			}

			fmt.Printf("Hook events for %s:\n", editor)
			for _, e := range events {
				fmt.Printf("  %-22s %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
}
