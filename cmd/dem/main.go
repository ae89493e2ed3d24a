package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/axemsolutions/dem/cmd/dem/cmd"
	"github.com/axemsolutions/dem/internal/core"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, core.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted!")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
