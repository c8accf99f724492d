package main

import (
	"os"

	"schemamodel/cmd/modelctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
