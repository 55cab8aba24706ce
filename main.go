package main

import (
	"os"

	"github.com/atsmatch/atsmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
}
