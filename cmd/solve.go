package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tfpf/solve-sudoku/internal/board"
	"github.com/tfpf/solve-sudoku/internal/render"
	"github.com/tfpf/solve-sudoku/internal/solver"
)

var (
	solveSeed     int64
	solveAttempts int
	solvePlain    bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle from a file or standard input",
		Long: `Solve a puzzle read from the given file, or from standard input when no
file is given.

Because a stalled solve places one random guess and never backtracks, a
solve can fail on a puzzle that has a solution. --attempts re-runs the
solver from scratch on the original input until it succeeds or the
attempts are used up.

Examples:
  solve-sudoku solve puzzle.txt
  solve-sudoku solve --seed 42 puzzle.txt
  cat puzzle.txt | solve-sudoku solve --attempts 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Seed for guess selection, incremented per attempt (0 = time-based)")
	solveCmd.Flags().IntVarP(&solveAttempts, "attempts", "a", 1, "Number of fresh solve attempts before giving up")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print the grid without colors")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveAttempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", solveAttempts)
	}

	puzzle, err := readPuzzle(args)
	if err != nil {
		return fmt.Errorf("could not read the puzzle: %w", err)
	}

	start := time.Now()
	for attempt := 1; attempt <= solveAttempts; attempt++ {
		seed := solveSeed
		if seed != 0 {
			// Identical seeds would repeat the exact same guesses, so
			// retries under a fixed seed each get their own offset.
			seed += int64(attempt - 1)
		}

		s := solver.New(puzzle, &solver.Options{Seed: seed})
		result, outcome, err := s.Solve()
		if err != nil {
			return err
		}

		if outcome == solver.OutcomeSolved {
			printBoard(result)
			log.Info("solved",
				"attempt", attempt,
				"passes", s.Passes(),
				"elapsed", time.Since(start).Round(time.Microsecond))
			return nil
		}

		log.Warn("gave up",
			"attempt", attempt,
			"passes", s.Passes(),
			"empty", result.EmptyCount())

		if attempt == solveAttempts {
			printBoard(result)
		}
	}

	return fmt.Errorf("could not solve after %d attempt(s)", solveAttempts)
}

func printBoard(b *board.Board) {
	if solvePlain {
		fmt.Print(b.Format())
		return
	}
	fmt.Print(render.Grid(b))
}
