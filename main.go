package main

import (
	"os"

	"github.com/rdelgado/econauts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
