package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/board"
	"github.com/vancomm/minesweeper-console/internal/config"
)

func TestCreateRand(t *testing.T) {
	a, b := createRand(42), createRand(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotNil(t, createRand(0))
}

func TestSetupBoard(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(layout, []byte("board: |\n  *.\n  ..\n"), 0o600))

	tests := []struct {
		name              string
		cfg               config.Config
		rows, cols, mines int
	}{
		{"preset", config.Config{Level: "middle"}, 14, 18, 40},
		{"custom", config.Config{Level: "middle", Custom: "5:6:7", Seed: 1}, 5, 6, 7},
		{"layout", config.Config{Custom: "5:6:7", Layout: layout, StrictWin: true}, 2, 2, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lvl, b, err := setupBoard(&test.cfg)
			require.NoError(t, err)
			assert.Equal(t, test.rows, lvl.Rows)
			assert.Equal(t, test.rows, b.RowSize())
			assert.Equal(t, test.cols, b.ColSize())
			assert.Equal(t, test.mines, b.LandMineCount())
			require.NoError(t, b.Initialize())
		})
	}

	_, b, err := setupBoard(&config.Config{Layout: layout, StrictWin: true})
	require.NoError(t, err)
	require.NoError(t, b.Initialize())
	b.OpenAt(board.At(0, 1))
	b.OpenAt(board.At(1, 0))
	b.OpenAt(board.At(1, 1))
	assert.True(t, b.IsInProgress())
	b.FlagAt(board.At(0, 0))
	assert.True(t, b.IsWin())

	for _, cfg := range []config.Config{
		{Level: "expert"},
		{Custom: "1:1:2"},
		{Layout: filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		_, _, err := setupBoard(&cfg)
		assert.Error(t, err)
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log = logrus.New()
	})

	path := filepath.Join(t.TempDir(), "mines.log")
	cfg := &config.Config{
		Log: config.LogConfig{File: path, Level: "info", MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	}
	require.NoError(t, setupLogging(cfg))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	log = logrus.New()
	require.NoError(t, setupLogging(&config.Config{Log: config.LogConfig{Level: "warn"}}))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.Equal(t, os.Stderr, log.Out)

	assert.Error(t, setupLogging(&config.Config{Log: config.LogConfig{Level: "loud"}}))
}
