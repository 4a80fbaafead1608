package main

import (
	"os"

	"github.com/rmfarias/capacita/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
