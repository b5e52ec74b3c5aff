package main

import (
	"os"

	"viso/cmd/viso/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
