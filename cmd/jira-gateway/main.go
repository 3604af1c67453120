package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crepache/App-Integrations-Jira/internal/app"
)

// set via ldflags at build time
var (
	version = "dev"
)

func main() {
	if err := app.Run(context.Background(), version, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
