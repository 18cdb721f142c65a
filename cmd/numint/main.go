// Command numint evaluates definite integrals from the command line.
//
// Usage:
//
//	numint integrate --method romberg --func reference --from 0 --to pi/2 -n 5
//	numint rule -n 4
//	numint batch jobs.yaml
//	numint funcs
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/numint/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
