package main

import (
	"os"

	"github.com/Gabolonhez/Portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
