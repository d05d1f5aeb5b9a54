// Package main provides the CLI entrypoint for unioncheck.
//
// unioncheck reports union misuse the Go compiler cannot reject:
//   - type-directed calls naming a type that is not an alternative
//   - duplicate alternatives and Void gaps
//   - non-trivial alternatives in trivial unions
package main

import (
	"fmt"
	"os"

	"union-engine/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
