package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Parse reads a puzzle in the plain text format used by puzzle files:
// 81 cells in row-major order, each either a digit '1'-'9' or '-' for an
// empty cell, with any amount of whitespace between cells (including none).
// Reading stops after the 81st cell; trailing content is ignored.
func Parse(r io.Reader) (*Board, error) {
	b := New()
	br := bufio.NewReader(r)

	pos := 0
	for pos < CellCount {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("puzzle truncated: got %d of %d cells", pos, CellCount)
		}
		if err != nil {
			return nil, fmt.Errorf("reading puzzle: %w", err)
		}

		switch {
		case unicode.IsSpace(ch):
			continue
		case ch == '-':
			pos++
		case ch >= '1' && ch <= '9':
			if err := b.Set(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid puzzle at position %d: %w", pos, err)
			}
			pos++
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, pos)
		}
	}

	return b, nil
}
