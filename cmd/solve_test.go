package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const easyPuzzle = "53--7----6--195----98----6-8---6---34--8-3--17---2---6-6----28----419--5----8--79"

func writePuzzle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolveCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"solve", "--plain", writePuzzle(t, easyPuzzle)})
	require.NoError(t, rootCmd.Execute())
}

func TestSolveCommandRejectsMalformedPuzzle(t *testing.T) {
	rootCmd.SetArgs([]string{"solve", "--plain", writePuzzle(t, "not a puzzle")})
	require.Error(t, rootCmd.Execute())
}

func TestSolveCommandRejectsMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"solve", filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, rootCmd.Execute())
}

func TestReadPuzzle(t *testing.T) {
	b, err := readPuzzle([]string{writePuzzle(t, easyPuzzle)})
	require.NoError(t, err)
	require.Equal(t, easyPuzzle, b.String())
}
