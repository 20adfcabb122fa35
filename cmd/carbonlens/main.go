package main

import (
	"os"

	"github.com/carbonlens/carbonlens/internal/cli"
	"github.com/carbonlens/carbonlens/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code. It is
// separate from main so tests can exercise it.
func run() int {
	if err := cli.NewRootCmd(version.GetVersion()).Execute(); err != nil {
		return 1
	}
	return 0
}
