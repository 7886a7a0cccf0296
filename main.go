package main

import (
	"os"

	"github.com/pacesnailbar/nailbar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
