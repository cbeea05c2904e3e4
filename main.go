// main is the entry point for the gitchart CLI.
package main

import (
	"fmt"
	"os"

	"github.com/flashcode/gitchart/cmd"
	"github.com/flashcode/gitchart/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		iocache.CloseCaching()
		os.Exit(1)
	}
}
