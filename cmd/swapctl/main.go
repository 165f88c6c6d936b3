package main

import (
	"os"

	"github.com/pcash-chain/swapcore/cmd/swapctl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
