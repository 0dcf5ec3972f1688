package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tfpf/solve-sudoku/internal/board"
)

func TestGrid(t *testing.T) {
	b, err := board.NewFromString("53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79")
	require.NoError(t, err)

	got := Grid(b)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 9)
	require.Contains(t, lines[0], "5")
	require.Contains(t, lines[0], "-")
}

func TestGridMarkedAcceptsNilMarks(t *testing.T) {
	b := board.New()
	require.Equal(t, Grid(b), GridMarked(b, nil))
}
