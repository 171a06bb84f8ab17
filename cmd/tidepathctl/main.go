// Command tidepathctl is a small demo CLI over the tidepath pathfinding
// library: it builds a synthetic terrain fixture, runs water/rail queries
// against it, and inspects the gateway graph and water components that
// back the hierarchical search.
package main

import (
	"fmt"
	"os"

	"github.com/turnforge/tidepath/cmd/tidepathctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
