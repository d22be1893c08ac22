package main

import (
	"os"

	"github.com/spacesedan/sentireport/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = ""
)

func main() {
	cmd := cli.NewRootCommand(version, commit)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
