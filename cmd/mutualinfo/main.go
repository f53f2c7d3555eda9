package main

import (
	"os"

	"github.com/sragli/mutual-information/cmd/mutualinfo/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
