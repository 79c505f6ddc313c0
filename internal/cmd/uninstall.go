package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// NewUninstallCmd removes this client's hook entries from the target
// editor's configuration, leaving everything else untouched.
func NewUninstallCmd() *cli.Command {
	return &cli.Command{
		Name:      "uninstall",
		Usage:     "Remove this client from the editor's hook configuration",
		ArgsUsage: "[claude-code|cursor]",
		Description: `Removes every hook entry whose command is this client from the target
editor's hook file (default claude-code). Other hook entries and unrelated
file content are preserved. A file with no matching entries is left alone.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "global",
				Aliases: []string{"g"},
				Usage:   "Uninstall from the user-level file under the home directory",
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

			removed, err := uninstallHooks(p, path, removalCandidates())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "Refusing to modify %s; fix or remove the file and retry.\n", path)
				os.Exit(1)
			}

			if removed == 0 {
				fmt.Printf("No %s hooks found in %s; nothing to do\n", p.DisplayName(), path)
				return nil
			}

			fmt.Printf("Removed %d %s hook entries from %s\n", removed, p.DisplayName(), path)
			return nil
		},
	}
}
