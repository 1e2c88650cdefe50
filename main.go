package main

import (
	"os"

	"github.com/ipveka/ThoughtChain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
