package main

import (
	"os"

	"github.com/dnorman/learnchain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
