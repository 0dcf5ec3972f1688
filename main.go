package main

import (
	"os"

	"github.com/tfpf/solve-sudoku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
