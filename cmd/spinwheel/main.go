// Command spinwheel runs the picker wheel demos in the terminal.
package main

import (
	"os"

	"github.com/ayn2op/spinwheel/internal/cli"
)

// Version is injected at build time with -ldflags "-X main.Version=...".
var Version = "v0.1.0-dev"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
