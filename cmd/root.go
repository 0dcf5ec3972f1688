// Package cmd implements the solve-sudoku command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tfpf/solve-sudoku/internal/board"
)

var rootCmd = &cobra.Command{
	Use:   "solve-sudoku",
	Short: "Solve Sudoku puzzles by logical deduction",
	Long: `solve-sudoku fills 9x9 Sudoku grids using naked and hidden singles,
falling back to a single random guess whenever deduction stalls. It never
backtracks: either the grid completes and validates, or the solver gives up.

Puzzles are plain text: 81 cells in row-major order, each a digit 1-9 or
'-' for an empty cell, separated by optional whitespace.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readPuzzle loads a puzzle from the file named by the first argument, or
// from standard input when no argument is given.
func readPuzzle(args []string) (*board.Board, error) {
	if len(args) == 0 {
		return board.Parse(os.Stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not open puzzle file: %w", err)
	}
	defer f.Close()

	return board.Parse(f)
}
