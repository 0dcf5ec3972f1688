package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "empty board",
			input: strings.Repeat("-", CellCount),
			want:  true,
		},
		{
			name:  "complete solution",
			input: solvedGrid,
			want:  true,
		},
		{
			name:  "partial board without conflicts",
			input: "53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79",
			want:  true,
		},
		{
			name:  "duplicate in row",
			input: "55-------" + strings.Repeat("-", 72),
			want:  false,
		},
		{
			name:  "duplicate in column",
			input: "7" + strings.Repeat("-", 26) + "7" + strings.Repeat("-", 53),
			want:  false,
		},
		{
			name:  "duplicate in block",
			input: "3---------3------" + strings.Repeat("-", 64),
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewFromString(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.IsValid())
		})
	}
}

func TestIsSolved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "complete solution",
			input: solvedGrid,
			want:  true,
		},
		{
			name:  "one empty cell",
			input: solvedGrid[:40] + "-" + solvedGrid[41:],
			want:  false,
		},
		{
			name:  "empty board",
			input: strings.Repeat("-", CellCount),
			want:  false,
		},
		{
			// Complete but with a duplicated digit: full cells alone do
			// not make a solution.
			name:  "complete with duplicate",
			input: solvedGrid[:1] + solvedGrid[:1] + solvedGrid[2:],
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewFromString(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.IsSolved())
		})
	}
}
