package main

import (
	"os"

	"github.com/schemalens/schemalens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
