package console

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vancomm/minesweeper-console/internal/board"
)

var ErrUnknownSnapshot = errors.New("no sign for cell snapshot")

const (
	EmptySign     = "■"
	FlagSign      = "⚑"
	UncheckedSign = "□"
	LandMineSign  = "☼"
)

type SignFunc func(board.Snapshot) string

func constSign(sign string) SignFunc {
	return func(board.Snapshot) string { return sign }
}

var DefaultSigns = map[board.SnapshotStatus]SignFunc{
	board.SnapshotEmpty:     constSign(EmptySign),
	board.SnapshotFlagged:   constSign(FlagSign),
	board.SnapshotLandMine:  constSign(LandMineSign),
	board.SnapshotUnchecked: constSign(UncheckedSign),
	board.SnapshotNumber: func(s board.Snapshot) string {
		return strconv.Itoa(s.Count)
	},
}

// Sign looks the snapshot up in signs. There is no fallback sign: a missing
// entry yields [ErrUnknownSnapshot].
func Sign(signs map[board.SnapshotStatus]SignFunc, s board.Snapshot) (string, error) {
	f, ok := signs[s.Status]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSnapshot, s.Status)
	}
	return f(s), nil
}
