// Package main provides the docshift CLI entry point.
package main

import (
	"os"

	"github.com/docshift-labs/docshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
