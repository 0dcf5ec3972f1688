// Package render draws Sudoku boards for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tfpf/solve-sudoku/internal/board"
)

var (
	// Alternating 3x3 blocks get a shaded background so the block
	// structure is visible without grid lines.
	shadedCellStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	plainCellStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1)

	markedCellStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("34")).
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

// Grid renders the board with alternating block shading.
// Empty cells are drawn as '-'.
func Grid(b *board.Board) string {
	return GridMarked(b, nil)
}

// GridMarked renders the board like Grid, additionally highlighting the
// marked positions. Callers use this to point out cells filled by the most
// recent deduction pass.
func GridMarked(b *board.Board, marks map[int]bool) string {
	var sb strings.Builder

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			pos := board.MakePos(row, col)
			cell := "-"
			if val := b.Get(pos); val != board.EmptyCell {
				cell = string('0' + byte(val))
			}

			style := plainCellStyle
			if (row/3+col/3)%2 == 0 {
				style = shadedCellStyle
			}
			if marks[pos] {
				style = markedCellStyle
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
