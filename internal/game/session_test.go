package game

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/board"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/level"
	"github.com/vancomm/minesweeper-console/internal/stats"
)

type fixture struct {
	session *Session
	out     *bytes.Buffer
	board   *board.Board
	stats   *stats.Recorder
}

func newFixture(t *testing.T, input io.Reader, rows, cols int, mines ...board.Position) fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)

	lvl := level.Level{Name: "test", Rows: rows, Cols: cols, Mines: len(mines)}
	b, err := board.New(lvl.Params(board.WinLenient), board.NewFixedPlacer(mines...))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	rec := stats.New()
	s := New(Options{
		Logger:   logger,
		Level:    lvl,
		Board:    b,
		Input:    input,
		Renderer: console.NewRenderer(out, false),
		Stats:    rec,
	})
	return fixture{session: s, out: out, board: b, stats: rec}
}

func (f fixture) summary(t *testing.T) stats.Summary {
	t.Helper()
	s, err := f.stats.Summary()
	require.NoError(t, err)
	return s
}

func TestRunWinsEmptyBoard(t *testing.T) {
	f := newFixture(t, strings.NewReader("o a1\nq\n"), 2, 2)

	err := f.session.Run(context.Background())

	assert.ErrorIs(t, err, ErrQuit)
	assert.True(t, f.board.IsWin())
	assert.Contains(t, f.out.String(), "GAME CLEAR!")
	assert.Contains(t, f.out.String(), " 1  ■ ■ \n 2  ■ ■ \n")
	assert.Contains(t, f.out.String(), "rounds played 1, won 1, lost 0")

	s := f.summary(t)
	assert.Equal(t, 1, s.Started)
	assert.Equal(t, 1, s.Won)
	assert.Equal(t, map[string]int{"open": 1}, s.Actions)
}

func TestRunLoseAndRestart(t *testing.T) {
	f := newFixture(t, strings.NewReader("o b2\no a1\nr\nq\n"), 3, 3, board.At(1, 1))

	err := f.session.Run(context.Background())

	assert.ErrorIs(t, err, ErrQuit)
	out := f.out.String()
	assert.Contains(t, out, " 2  □ ☼ □ \n")
	assert.Contains(t, out, "GAME OVER!")
	assert.Contains(t, out, "this round is over")

	assert.True(t, f.board.IsInProgress())
	assert.Equal(t, board.Snapshot{Status: board.SnapshotUnchecked}, f.board.Snapshot(board.At(1, 1)))

	s := f.summary(t)
	assert.Equal(t, 2, s.Started)
	assert.Equal(t, 0, s.Won)
	assert.Equal(t, 1, s.Lost)
	assert.Equal(t, map[string]int{"open": 1}, s.Actions)
}

func TestRunChainedCommandsWin(t *testing.T) {
	f := newFixture(t,
		strings.NewReader("f b2;o a1;o b1;o c1;o a2;o c2;o a3;o b3;o c3\n"),
		3, 3, board.At(1, 1),
	)

	err := f.session.Run(context.Background())

	assert.ErrorIs(t, err, ErrQuit)
	assert.True(t, f.board.IsWin())
	assert.Equal(t, 0, f.board.FlagsLeft())
	assert.Contains(t, f.out.String(), " 2  1 ⚑ 1 \n")

	s := f.summary(t)
	assert.Equal(t, map[string]int{"open": 8, "flag": 1}, s.Actions)
	assert.Equal(t, 1, s.Won)
}

func TestRunRejectsBadInput(t *testing.T) {
	f := newFixture(t, strings.NewReader("o z9\nx\no a1 a2\no a1;o zz1;o c3\n"), 3, 3, board.At(1, 1))

	err := f.session.Run(context.Background())

	assert.ErrorIs(t, err, ErrQuit)
	out := f.out.String()
	assert.Contains(t, out, "error: invalid cell: z9 is outside the 3x3 board")
	assert.Contains(t, out, "error: unknown command")
	assert.Contains(t, out, "error: invalid number of arguments")
	assert.Contains(t, out, "error: invalid cell")

	// the rest of a line is dropped after a bad command
	assert.Equal(t, board.Snapshot{Status: board.SnapshotNumber, Count: 1}, f.board.Snapshot(board.At(0, 0)))
	assert.Equal(t, board.Snapshot{Status: board.SnapshotUnchecked}, f.board.Snapshot(board.At(2, 2)))
	assert.True(t, f.board.IsInProgress())
}

func TestRunHelp(t *testing.T) {
	f := newFixture(t, strings.NewReader("h\n"), 2, 2)

	assert.ErrorIs(t, f.session.Run(context.Background()), ErrQuit)
	assert.Contains(t, f.out.String(), "o <cell>")
}

func TestRunStopsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	f := newFixture(t, r, 2, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.session.Run(ctx) }()

	_, err := io.WriteString(w, "f a1\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop")
	}
}

func TestRunFailsOnMissingSign(t *testing.T) {
	f := newFixture(t, strings.NewReader("q\n"), 2, 2)
	f.session.renderer.WithSigns(map[board.SnapshotStatus]console.SignFunc{})

	err := f.session.Run(context.Background())

	assert.ErrorIs(t, err, console.ErrUnknownSnapshot)
}

type brokenPlacer struct{}

func (brokenPlacer) Place(*board.PositionSet, int) ([]board.Position, error) {
	return nil, assert.AnError
}

func TestRunFailsOnInitialize(t *testing.T) {
	b, err := board.New(board.Params{Rows: 2, Cols: 2}, brokenPlacer{})
	require.NoError(t, err)

	s := New(Options{
		Level:    level.Level{Name: "test", Rows: 2, Cols: 2},
		Board:    b,
		Input:    strings.NewReader(""),
		Renderer: console.NewRenderer(io.Discard, false),
	})

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotNil(t, s.Stats())
}
