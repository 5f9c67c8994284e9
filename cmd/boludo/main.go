package main

import (
	"os"

	"github.com/bitgeese/boludo-translator/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
