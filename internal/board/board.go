package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Params struct {
	Rows, Cols, LandMineCount int
	WinRule                   WinRule
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("invalid board size %dx%d", p.Rows, p.Cols)
	}
	if p.LandMineCount < 0 || p.LandMineCount > p.Rows*p.Cols {
		return fmt.Errorf(
			"invalid land mine count %d for %dx%d board",
			p.LandMineCount, p.Rows, p.Cols,
		)
	}
	return nil
}

type Board struct {
	params Params
	placer MinePlacer
	cells  [][]Cell
	status GameStatus
}

// New returns a board of unchecked empty cells. Call [Board.Initialize] to
// lay out the land mines.
func New(params Params, placer MinePlacer) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if placer == nil {
		return nil, errors.New("no mine placer")
	}
	b := &Board{
		params: params,
		placer: placer,
		cells:  newGrid(params.Rows, params.Cols),
		status: InProgress,
	}
	return b, nil
}

func newGrid(rows, cols int) [][]Cell {
	grid := make([][]Cell, rows)
	for row := range grid {
		grid[row] = make([]Cell, cols)
		for col := range grid[row] {
			grid[row][col] = emptyCell()
		}
	}
	return grid
}

// Initialize starts a new round. The previous grid is kept if the new one
// could not be built.
func (b *Board) Initialize() (err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = ae
				return
			}
			panic(r)
		}
	}()

	rows, cols := b.params.Rows, b.params.Cols
	positions := NewPositionSet(rows, cols)

	landMines, err := b.placer.Place(positions, b.params.LandMineCount)
	if err != nil {
		return fmt.Errorf("unable to place land mines: %w", err)
	}
	assert(len(landMines) == b.params.LandMineCount, "placer returned wrong number of land mines")

	grid := newGrid(rows, cols)

	mined := make([][]bool, rows)
	for row := range mined {
		mined[row] = make([]bool, cols)
	}
	for _, p := range landMines {
		assert(p.InBounds(rows, cols), fmt.Sprintf("land mine %s out of bounds", p))
		assert(!mined[p.row][p.col], fmt.Sprintf("duplicate land mine %s", p))
		mined[p.row][p.col] = true
		grid[p.row][p.col] = landMineCell()
	}

	/*
	 * Counts are taken from the mine mask, which is complete at this
	 * point, never from the grid being written.
	 */
	for _, p := range positions.Subtract(landMines) {
		count := 0
		for _, n := range p.Neighbors(rows, cols) {
			if mined[n.row][n.col] {
				count++
			}
		}
		if count != 0 {
			grid[p.row][p.col] = numberCell(count)
		}
	}

	b.cells = grid
	b.status = InProgress

	Log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": len(landMines),
	}).Debugf("board initialized\n%s", b)

	return nil
}

// panics [AssertionError] on out-of-bounds positions
func (b *Board) cell(p Position) *Cell {
	assert(!b.IsInvalidPosition(p), fmt.Sprintf("position %s out of bounds", p))
	return &b.cells[p.row][p.col]
}

// OpenAt opens the cell at p. Opening a land mine loses the round; opening a
// cell without neighboring mines opens its whole empty region. Flagged cells
// cannot be opened.
func (b *Board) OpenAt(p Position) {
	if b.status != InProgress {
		return
	}
	c := b.cell(p)
	if c.IsFlagged() {
		return
	}
	if c.IsLandMine() {
		c.open()
		b.status = Lose
		return
	}
	b.openSurroundedCells(p)
	b.checkIfGameIsOver()
}

func (b *Board) openSurroundedCells(start Position) {
	rows, cols := b.params.Rows, b.params.Cols
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := b.cell(p)
		if c.IsLandMine() || !c.open() {
			continue
		}
		if c.HasLandMineCount() {
			continue
		}
		for _, n := range p.Neighbors(rows, cols) {
			if b.cells[n.row][n.col].State() == Unchecked {
				stack = append(stack, n)
			}
		}
	}
}

func (b *Board) FlagAt(p Position) {
	if b.status != InProgress {
		return
	}
	b.cell(p).flag()
	b.checkIfGameIsOver()
}

func (b *Board) checkIfGameIsOver() {
	if b.isAllCellChecked() {
		b.status = Win
	}
}

func (b *Board) isAllCellChecked() bool {
	for _, row := range b.cells {
		for _, c := range row {
			if !b.params.WinRule.checked(c) {
				return false
			}
		}
	}
	return true
}

func (b *Board) IsInvalidPosition(p Position) bool {
	return !p.InBounds(b.params.Rows, b.params.Cols)
}

func (b *Board) Status() GameStatus { return b.status }
func (b *Board) IsInProgress() bool { return b.status == InProgress }
func (b *Board) IsWin() bool { return b.status == Win }
func (b *Board) IsLose() bool { return b.status == Lose }

func (b *Board) RowSize() int { return b.params.Rows }
func (b *Board) ColSize() int { return b.params.Cols }
func (b *Board) LandMineCount() int { return b.params.LandMineCount }

// panics [AssertionError] on out-of-bounds positions
func (b *Board) Snapshot(p Position) Snapshot {
	return b.cell(p).Snapshot()
}

// FlagsLeft is the number of land mines minus the number of flags placed. It
// goes negative when the player has flagged too many cells.
func (b *Board) FlagsLeft() int {
	flags := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.IsFlagged() {
				flags++
			}
		}
	}
	return b.params.LandMineCount - flags
}

// String dumps the actual layout, mines included.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.cells {
		for _, c := range row {
			fmt.Fprint(&sb, c.String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
