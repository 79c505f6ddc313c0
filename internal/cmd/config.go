package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Devleaps/agent-policies/internal/config"
)

// NewConfigCmd prints the resolved effective configuration along with which
// layer files contributed to it.
func NewConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show the resolved effective configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Resolve(config.NewStderrLogger())

			bundles := "(none)"
			if len(cfg.Bundles) > 0 {
				bundles = strings.Join(cfg.Bundles, ", ")
			}

			fmt.Printf("Editor:                  %s\n", cfg.Editor)
			fmt.Printf("Server URL:              %s\n", cfg.ServerURL)
			fmt.Printf("Default policy behavior: %s\n", cfg.DefaultPolicyBehavior)
			fmt.Printf("Bundles:                 %s\n", bundles)
			fmt.Printf("User config:             %s\n", orNotFound(cfg.UserFile))
			fmt.Printf("Project config:          %s\n", orNotFound(cfg.ProjectFile))
			return nil
		},
	}
}

func orNotFound(path string) string {
	if path == "" {
		return "(not found)"
	}
	return path
}
