package main

import (
	"os"

	"github.com/sungam3r/termsink/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
