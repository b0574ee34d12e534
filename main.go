package main

import (
	"os"

	"github.com/resumeai/resumeai-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
