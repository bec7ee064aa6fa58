// Package main is the entry point for the navigator CLI.
package main

import (
	"os"

	"github.com/zatekoja/costnavigator/cmd/navigator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
