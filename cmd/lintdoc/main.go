package main

import (
	"os"

	"github.com/bearcnc/lintdoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
