package main

import (
	"fmt"
	"os"

	"github.com/imgreport/imgreport/internal/app/cli"
	"github.com/imgreport/imgreport/internal/platform/errors"
)

const (
	exitError = 1
	exitUsage = 2
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.IsUsage(err) {
			os.Exit(exitUsage)
		}
		os.Exit(exitError)
	}
}
