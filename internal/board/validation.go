package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
	ErrCellFilled      = errors.New("cell is already filled")
)

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation, so a partially filled board is
// valid as long as no row, column, or block repeats a digit.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, blockCheck [9]uint

	for pos := 0; pos < CellCount; pos++ {
		val := b.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col, block := posToRow[pos], posToCol[pos], posToBlock[pos]
		mask := uint(1 << (val - 1))

		// Check for duplicates in row, column, or block
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			blockCheck[block]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		blockCheck[block] |= mask
	}

	return true
}

// IsSolved reports whether a board is a complete, legal Sudoku solution:
// every cell holds a digit 1-9 and every row, column, and block contains
// each digit exactly once. A board with any empty cell is not solved.
// This is the authoritative check; it does not trust how the board was
// filled in.
func (b *Board) IsSolved() bool {
	for _, cell := range b.cells {
		if cell < 1 || cell > 9 {
			return false
		}
	}

	// All 81 cells are filled, so no duplicates implies each unit holds
	// each digit exactly once.
	return b.IsValid()
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidValue reports whether a given number is valid on a Sudoku board.
func isValidValue(num int) bool {
	return num >= 1 && num <= 9
}

// validateValue checks if a value is valid for Sudoku (1-9).
func (b *Board) validateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
