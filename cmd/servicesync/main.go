package main

import (
	"os"

	"github.com/aexlabs/servicesync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
