package main

import (
	"os"

	"github.com/viant/quadrec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
