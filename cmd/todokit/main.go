package main

import (
	"os"

	"github.com/fitz/todokit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
