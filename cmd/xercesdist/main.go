// Package main provides the xercesdist CLI, which names the Xerces-C distribution for a host.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/xercesdist/internal/domain/entities"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var platformErr *entities.UnrecognizedPlatformError
		if errors.As(err, &platformErr) {
			fmt.Fprintf(stderr, "Error: %v (supported: Darwin, Linux, Windows)\n", err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
