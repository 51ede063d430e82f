package main

import (
	"os"

	"github.com/openexhibits/exhibits-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
