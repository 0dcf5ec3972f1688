package solver

import (
	"github.com/tfpf/solve-sudoku/internal/board"
)

// pass runs one full deduction sweep: naked singles over all empty cells in
// row-major order, then hidden singles for each digit 1-9 over all rows,
// then all columns, then all blocks. The sweep works on live board state,
// so rules later in the pass see assignments made earlier in the same pass.
//
// When allowGuess is true, at most one cell with several candidates is
// filled with a candidate chosen by the configured selection capability;
// the authorization is consumed by the first guess placed.
func (s *Solver) pass(allowGuess bool) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			pos := board.MakePos(row, col)
			if s.Board.Get(pos) != board.EmptyCell {
				continue
			}

			candidates := s.Board.Candidates(pos)
			switch {
			case len(candidates) == 1:
				s.place(pos, candidates[0])
			case len(candidates) > 1 && allowGuess:
				s.place(pos, s.choose(candidates))
				allowGuess = false
			}
		}
	}

	for val := 1; val <= 9; val++ {
		for row := 0; row < 9; row++ {
			s.placeSingleInRow(row, val)
		}
		for col := 0; col < 9; col++ {
			s.placeSingleInCol(col, val)
		}
		for blockRow := 0; blockRow < 9; blockRow += 3 {
			for blockCol := 0; blockCol < 9; blockCol += 3 {
				s.placeSingleInBlock(blockRow, blockCol, val)
			}
		}
	}
}

// placeSingleInRow assigns val in the given row if exactly one empty cell
// of the row can legally accept it.
func (s *Solver) placeSingleInRow(row, val int) {
	if !s.Board.AllowedInRow(row, val) {
		return
	}

	spot, count := board.InvalidCell, 0
	for col := 0; col < 9; col++ {
		pos := board.MakePos(row, col)
		if s.Board.Get(pos) == board.EmptyCell &&
			s.Board.AllowedInCol(col, val) &&
			s.Board.AllowedInBlock(row, col, val) {
			spot = pos
			count++
		}
	}

	if count == 1 {
		s.place(spot, val)
	}
}

// placeSingleInCol assigns val in the given column if exactly one empty
// cell of the column can legally accept it.
func (s *Solver) placeSingleInCol(col, val int) {
	if !s.Board.AllowedInCol(col, val) {
		return
	}

	spot, count := board.InvalidCell, 0
	for row := 0; row < 9; row++ {
		pos := board.MakePos(row, col)
		if s.Board.Get(pos) == board.EmptyCell &&
			s.Board.AllowedInRow(row, val) &&
			s.Board.AllowedInBlock(row, col, val) {
			spot = pos
			count++
		}
	}

	if count == 1 {
		s.place(spot, val)
	}
}

// placeSingleInBlock assigns val in the block whose first cell is at
// (blockRow, blockCol) if exactly one empty cell of the block can legally
// accept it. blockRow and blockCol are each one of 0, 3, and 6.
func (s *Solver) placeSingleInBlock(blockRow, blockCol, val int) {
	if !s.Board.AllowedInBlock(blockRow, blockCol, val) {
		return
	}

	spot, count := board.InvalidCell, 0
	for row := blockRow; row < blockRow+3; row++ {
		for col := blockCol; col < blockCol+3; col++ {
			pos := board.MakePos(row, col)
			if s.Board.Get(pos) == board.EmptyCell && s.Board.AllowedAt(row, col, val) {
				spot = pos
				count++
			}
		}
	}

	if count == 1 {
		s.place(spot, val)
	}
}

// place assigns val at pos. Callers only pass cells they have confirmed
// empty and values confirmed legal, so a failure is a solver bug.
func (s *Solver) place(pos, val int) {
	if err := s.Board.Set(pos, val); err != nil {
		panic("solver: " + err.Error())
	}
}
