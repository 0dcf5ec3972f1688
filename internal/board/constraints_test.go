package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedInRow(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(2, 7), 4))

	require.False(t, b.AllowedInRow(2, 4))
	require.True(t, b.AllowedInRow(2, 5))
	require.True(t, b.AllowedInRow(3, 4))
}

func TestAllowedInCol(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(6, 1), 9))

	require.False(t, b.AllowedInCol(1, 9))
	require.True(t, b.AllowedInCol(1, 8))
	require.True(t, b.AllowedInCol(2, 9))
}

func TestAllowedInBlockSkipsSharedRowAndColumn(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(0, 0), 5))

	// (0,0) shares a row with (0,1) and a column with (1,0): the block
	// check defers those cells to the row and column checks.
	require.True(t, b.AllowedInBlock(0, 1, 5))
	require.True(t, b.AllowedInBlock(1, 0, 5))

	// (1,1) shares neither, so the block check sees the 5.
	require.False(t, b.AllowedInBlock(1, 1, 5))
	require.False(t, b.AllowedInBlock(2, 2, 5))

	// The conjunction still rejects the shared-row and shared-column cells.
	require.False(t, b.AllowedAt(0, 1, 5))
	require.False(t, b.AllowedAt(1, 0, 5))
	require.False(t, b.AllowedAt(1, 1, 5))
	require.True(t, b.AllowedAt(4, 4, 5))
}

func TestCandidates(t *testing.T) {
	b, err := NewFromString("53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79")
	require.NoError(t, err)

	// (0,2): row holds {5,3,7}, column holds {8}, block holds {5,3,6,9,8}.
	require.Equal(t, []int{1, 2, 4}, b.Candidates(MakePos(0, 2)))

	// (4,4) is the grid center with a single legal digit.
	require.Equal(t, []int{5}, b.Candidates(MakePos(4, 4)))
}

func TestCandidatesReflectMutations(t *testing.T) {
	b := New()
	pos := MakePos(0, 0)
	require.Len(t, b.Candidates(pos), 9)

	require.NoError(t, b.Set(MakePos(0, 8), 1))
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, b.Candidates(pos))
}
