// Command f16step is the thin CLI boundary around the f16model library: it
// installs a coefficient catalog from a data directory and runs one step,
// printing state derivatives and auxiliary outputs as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/camsima/f16model/cmd/f16step/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
