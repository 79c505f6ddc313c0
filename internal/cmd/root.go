// Package cmd wires the CLI surface: install, uninstall, config and events
// subcommands, plus the default relay mode that forwards one hook event
// from stdin to the policy server.
package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/Devleaps/agent-policies/internal/constants"
)

// NewRootCmd assembles the CLI. Invoking the binary without a subcommand
// enters relay mode, which is how the editor hook mechanism calls it.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Name:      constants.BinaryName,
		Usage:     "Policy hook relay for AI coding agents",
		ArgsUsage: "[claude-code|cursor]",
		Description: `Reads one hook event from stdin, forwards it to the configured policy
server together with the enabled bundles, and writes the editor's hook
response to stdout. Install and uninstall manage the hook registrations
in the editor's native configuration file.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "bundle",
				Usage: "Enable a policy bundle (repeatable; overrides configured bundles)",
			},
			&cli.BoolFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "Append relay debug entries to the rotating client log",
			},
		},
		Commands: []*cli.Command{
			NewInstallCmd(),
			NewUninstallCmd(),
			NewConfigCmd(),
			NewEventsCmd(),
			NewVersionCmd(),
		},
		Action: relayAction,
	}
}
