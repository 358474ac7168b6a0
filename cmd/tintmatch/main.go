package main

import (
	"os"

	"github.com/tintlab/tintmatch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
