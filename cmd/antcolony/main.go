// Command antcolony finds short tours through geographic points with Ant
// Colony Optimization.
package main

import (
	"os"

	"github.com/katalvlaran/antcolony/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
