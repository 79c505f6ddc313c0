package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// NewInstallCmd registers this client for every hook event of the target
// editor. Re-running install is a no-op: an unchanged file is not rewritten.
func NewInstallCmd() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Register this client in the editor's hook configuration",
		ArgsUsage: "[claude-code|cursor]",
		Description: `Adds a hook entry invoking this client for every supported event of the
target editor (default claude-code). Existing entries and unrelated file
content are preserved; running install twice changes nothing.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "global",
				Aliases: []string{"g"},
				Usage:   "Install into the user-level file under the home directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			editor, err := parseEditorArg(cmd.Args().First())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			p := platformFor(editor)
			path, err := p.ConfigPath(cmd.Bool("global"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			added, err := installHooks(p, path, clientCommand())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "Refusing to overwrite %s; fix or remove the file and retry.\n", path)
				os.Exit(1)
			}

			if len(added) == 0 {
				fmt.Printf("%s hooks already installed in %s\n", p.DisplayName(), path)
				return nil
			}

			fmt.Printf("Installed %s hooks in %s\n", p.DisplayName(), path)
			fmt.Printf("Events added (%d): %s\n", len(added), strings.Join(added, ", "))
			return nil
		},
	}
}
