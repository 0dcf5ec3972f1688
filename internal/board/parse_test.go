package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{
			name: "whitespace separated cells",
			input: `5 3 - - 7 - - - -
6 - - 1 9 5 - - -
- 9 8 - - - - 6 -
8 - - - 6 - - - 3
4 - - 8 - 3 - - 1
7 - - - 2 - - - 6
- 6 - - - - 2 8 -
- - - 4 1 9 - - 5
- - - - 8 - - 7 9
`,
			want: "53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79",
		},
		{
			name:  "no separators at all",
			input: solvedGrid,
			want:  solvedGrid,
		},
		{
			name:  "mixed tabs and newlines",
			input: "5\t3\n-" + strings.Repeat(" -", 78),
			want:  "53" + strings.Repeat("-", 79),
		},
		{
			name:  "trailing content ignored",
			input: solvedGrid + "\ngarbage after the 81st cell",
			want:  solvedGrid,
		},
		{
			name:    "truncated puzzle",
			input:   "53--7----",
			wantErr: "puzzle truncated",
		},
		{
			name:    "invalid character",
			input:   "53--7--x-" + strings.Repeat("-", 72),
			wantErr: "invalid character",
		},
		{
			name:    "zero is not a valid cell",
			input:   "0" + strings.Repeat("-", 80),
			wantErr: "invalid character",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Parse(strings.NewReader(tc.input))
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, b.String())
		})
	}
}
