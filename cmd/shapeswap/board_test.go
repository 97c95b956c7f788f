package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapeswap/internal/config"
	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

func TestReadBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAAB\n\nCDCA\n  DCDC  \n"), 0o644))

	g, err := readBoard(path, 4)
	require.NoError(t, err)
	assert.Equal(t, "AAAB\nCDCA\nDCDC", g.String())
}

func TestReadBoardErrors(t *testing.T) {
	_, err := readBoard(filepath.Join(t.TempDir(), "missing.txt"), 4)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "ragged.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAA\nAB\n"), 0o644))
	_, err = readBoard(path, 4)
	assert.ErrorIs(t, err, core.ErrMalformedGrid)
}

func TestReadBoardRejectsExtraKinds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("ABCD\nDCBH\n"), 0o644))

	_, err := readBoard(path, 4)
	assert.ErrorIs(t, err, core.ErrMalformedGrid)
	assert.ErrorContains(t, err, "(1,3)")

	g, err := readBoard(path, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
}

func TestFormatBoard(t *testing.T) {
	g := core.MustParseGrid("AAAA", "BCDB")
	marks := core.DetectMatches(g, 4)
	cfg := config.DefaultShapesConfig()

	assert.Equal(t, "*A*A*A*A\n B C D B\n", formatBoard(g, cfg, marks, true))
	assert.Equal(t, " ● ● ● ●\n ▲ ■ ⬟ ▲\n", formatBoard(g, cfg, core.MatchSet{}, false))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    ab\n    cd\n", indent("ab\ncd\n"))
}
