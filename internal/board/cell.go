package board

import (
	"fmt"
	"strconv"
)

type CellState uint8

const (
	Unchecked CellState = iota
	Opened
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Opened:
		return "opened"
	case Flagged:
		return "flagged"
	default:
		return "!"
	}
}

// open and flag only ever leave Unchecked. They report whether the state
// changed.
func (s *CellState) open() bool {
	if *s != Unchecked {
		return false
	}
	*s = Opened
	return true
}

func (s *CellState) flag() bool {
	if *s != Unchecked {
		return false
	}
	*s = Flagged
	return true
}

type CellKind uint8

const (
	Empty CellKind = iota
	LandMine
	Number
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case LandMine:
		return "land mine"
	case Number:
		return "number"
	default:
		return "!"
	}
}

// Cell is one square of the board. Its kind and count never change after
// creation; only the state does.
type Cell struct {
	kind  CellKind
	count int
	state CellState
}

func emptyCell() Cell {
	return Cell{kind: Empty}
}

func landMineCell() Cell {
	return Cell{kind: LandMine}
}

// panics [AssertionError]
func numberCell(count int) Cell {
	assert(1 <= count && count <= 8, fmt.Sprintf("invalid land mine count %d", count))
	return Cell{kind: Number, count: count}
}

func (c Cell) Kind() CellKind { return c.kind }
func (c Cell) State() CellState { return c.state }
func (c Cell) IsLandMine() bool { return c.kind == LandMine }
func (c Cell) IsOpened() bool { return c.state == Opened }
func (c Cell) IsFlagged() bool { return c.state == Flagged }
func (c Cell) IsChecked() bool { return c.state != Unchecked }
func (c Cell) LandMineCount() int { return c.count }
func (c Cell) HasLandMineCount() bool {
	return c.kind == Number
}

func (c *Cell) open() bool { return c.state.open() }
func (c *Cell) flag() bool { return c.state.flag() }

func (c Cell) Snapshot() Snapshot {
	switch c.state {
	case Flagged:
		return Snapshot{Status: SnapshotFlagged}
	case Opened:
		switch c.kind {
		case LandMine:
			return Snapshot{Status: SnapshotLandMine}
		case Number:
			return Snapshot{Status: SnapshotNumber, Count: c.count}
		default:
			return Snapshot{Status: SnapshotEmpty}
		}
	default:
		return Snapshot{Status: SnapshotUnchecked}
	}
}

// String returns the layout sign of the cell regardless of its state.
func (c Cell) String() string {
	switch c.kind {
	case LandMine:
		return "*"
	case Number:
		return strconv.Itoa(c.count)
	default:
		return "."
	}
}
