package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Devleaps/agent-policies/internal/constants"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// NewVersionCmd prints the client version.
func NewVersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("%s %s\n", constants.BinaryName, Version)
			return nil
		},
	}
}
