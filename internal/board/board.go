package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// Board represents a 9x9 Sudoku board.
//
// A Board carries no derived state: candidate sets are recomputed on demand
// (see Candidates) and the empty-cell count is recomputed by scanning, so
// every query is trivially consistent with the cells themselves.
type Board struct {
	cells [CellCount]int
}

// New creates an empty Board.
func New() *Board {
	return &Board{}
}

// NewFromString creates a Board from an 81-character string.
// Use '-', '.' or '0' for empty cells, '1'-'9' for filled cells.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("string must be exactly %d characters, got %d", CellCount, len(s))
	}

	b := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '-', '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if err := b.Set(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid board at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Set places a value 1-9 at the given empty position.
// Returns an error if the position or value is out of range, or if the cell
// is already filled. Whether the value conflicts with a row, column, or
// block is not checked here; callers consult AllowedAt before placing.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if b.cells[pos] != EmptyCell {
		return fmt.Errorf("%w: position %d holds %d", ErrCellFilled, pos, b.cells[pos])
	}

	b.cells[pos] = val
	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// EmptyCount returns the number of empty cells on the board.
// The count is recomputed on every call rather than maintained incrementally.
func (b *Board) EmptyCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell == EmptyCell {
			count++
		}
	}
	return count
}

// ClueCount returns the number of filled cells on the board.
func (b *Board) ClueCount() int {
	return CellCount - b.EmptyCount()
}

// String returns the board as an 81-character string.
// Empty cells are represented as '-', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for row, column, and block mapping.
var (
	posToRow   [CellCount]int
	posToCol   [CellCount]int
	posToBlock [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// init initializes the position-to-unit lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBlock[pos] = 3*(pos/27) + (pos%9)/3
	}
}
