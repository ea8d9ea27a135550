package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/board"
)

func TestPresets(t *testing.T) {
	presets, err := Presets()
	require.NoError(t, err)
	require.Len(t, presets, 4)

	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{"very-beginner", 4, 5, 2},
		{"beginner", 8, 10, 10},
		{"middle", 14, 18, 40},
		{"advanced", 20, 24, 99},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := Lookup(test.name)
			require.NoError(t, err)
			assert.Equal(t, Level{test.name, test.rows, test.cols, test.mines}, l)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("expert")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	l, err := Lookup("BEGINNER")
	require.NoError(t, err)
	assert.Equal(t, "beginner", l.Name)
}

func TestParseSpec(t *testing.T) {
	l, err := ParseSpec("9:9:10")
	require.NoError(t, err)
	assert.Equal(t, Level{"custom", 9, 9, 10}, l)
	assert.Equal(t, "9:9:10", l.Spec())
	assert.Equal(t, board.Params{Rows: 9, Cols: 9, LandMineCount: 10, WinRule: board.WinStrict},
		l.Params(board.WinStrict))

	for _, spec := range []string{"", "9:9", "a:b:c", "3:3:10", "0:3:0", "3:27:1"} {
		_, err := ParseSpec(spec)
		assert.Error(t, err, spec)
	}
}

func TestParseLayout(t *testing.T) {
	data := []byte(`
name: corner
board: |
  *..
  ...
  ..*
`)
	l, placer, err := ParseLayout(data)
	require.NoError(t, err)
	assert.Equal(t, Level{"corner", 3, 3, 2}, l)

	b, err := board.New(l.Params(board.WinLenient), placer)
	require.NoError(t, err)
	require.NoError(t, b.Initialize())
	assert.Equal(t, "* 1 . \n1 2 1 \n. 1 * \n", b.String())
}

func TestParseLayoutErrors(t *testing.T) {
	tests := map[string]string{
		"ragged":   "board: |\n  ...\n  ..\n",
		"bad sign": "board: |\n  .x.\n",
		"empty":    "board: ''\n",
		"not yaml": "board: [\n",
		"too wide": "board: |\n  " + "...........................\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParseLayout([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: |\n  .*\n"), 0o600))

	l, _, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, Level{"layout", 1, 2, 1}, l)

	_, _, err = LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
