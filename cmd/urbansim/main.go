package main

import (
	"os"

	"github.com/urbansim-ai/urbansim-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
