// ABOUTME: Entry point for gymsheet CLI.
// ABOUTME: Invokes the root Cobra command and exits non-zero on failure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
