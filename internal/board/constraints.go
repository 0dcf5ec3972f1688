package board

// AllowedInRow reports whether val may still be placed somewhere in the
// given row, i.e. the row does not already contain it.
func (b *Board) AllowedInRow(row, val int) bool {
	for col := 0; col < 9; col++ {
		if b.cells[MakePos(row, col)] == val {
			return false
		}
	}
	return true
}

// AllowedInCol reports whether val may still be placed somewhere in the
// given column.
func (b *Board) AllowedInCol(col, val int) bool {
	for row := 0; row < 9; row++ {
		if b.cells[MakePos(row, col)] == val {
			return false
		}
	}
	return true
}

// AllowedInBlock reports whether val may be placed at (row, col) as far as
// the containing 3x3 block is concerned. Block cells sharing the row or the
// column of (row, col) are skipped: AllowedInRow and AllowedInCol account
// for those cells, so scanning them here would double-count.
func (b *Board) AllowedInBlock(row, col, val int) bool {
	blockRowStart := row - row%3
	blockColStart := col - col%3

	for i := blockRowStart; i < blockRowStart+3; i++ {
		for j := blockColStart; j < blockColStart+3; j++ {
			if i != row && j != col && b.cells[MakePos(i, j)] == val {
				return false
			}
		}
	}
	return true
}

// AllowedAt reports whether val may be placed at (row, col).
// The cell at (row, col) must be empty.
func (b *Board) AllowedAt(row, col, val int) bool {
	return b.AllowedInRow(row, val) &&
		b.AllowedInCol(col, val) &&
		b.AllowedInBlock(row, col, val)
}

// Candidates returns the values 1-9 that may be placed at the given empty
// position. The result is derived from the current cells on every call;
// nothing is cached, so any mutation is immediately reflected.
// An empty slice means the cell admits no value at all.
func (b *Board) Candidates(pos int) []int {
	row, col := posToRow[pos], posToCol[pos]
	candidates := make([]int, 0, 9)
	for val := 1; val <= 9; val++ {
		if b.AllowedAt(row, col, val) {
			candidates = append(candidates, val)
		}
	}
	return candidates
}
