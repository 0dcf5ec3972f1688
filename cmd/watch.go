package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tfpf/solve-sudoku/internal/solver"
	"github.com/tfpf/solve-sudoku/internal/tui"
)

var watchSeed int64

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Step through a solve one deduction pass at a time",
		Long: `Open an interactive viewer that runs one deduction pass per keypress,
highlighting the cells each pass fills in.

Examples:
  solve-sudoku watch puzzle.txt
  solve-sudoku watch --seed 42 puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	watchCmd.Flags().Int64Var(&watchSeed, "seed", 0, "Seed for guess selection (0 = time-based)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	puzzle, err := readPuzzle(args)
	if err != nil {
		return fmt.Errorf("could not read the puzzle: %w", err)
	}
	if !puzzle.IsValid() {
		return solver.ErrInvalidPuzzle
	}

	m := tui.New(puzzle, watchSeed, 0, 0)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
