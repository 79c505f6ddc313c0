package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Devleaps/agent-policies/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
