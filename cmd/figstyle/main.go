package main

import (
	"fmt"
	"os"

	"github.com/hepviz/figstyle/internal/cli"
)

// Build-time version information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
