package board

import "fmt"

// Position is a (row, col) cell coordinate. Both coordinates are
// non-negative; the zero value is the top-left cell.
type Position struct {
	row, col int
}

// At panics [AssertionError] if row or col is negative.
func At(row, col int) Position {
	assert(row >= 0 && col >= 0, fmt.Sprintf("negative position %d:%d", row, col))
	return Position{row, col}
}

func (p Position) Row() int { return p.row }
func (p Position) Col() int { return p.col }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.row, p.col)
}

type RelativeOffset struct {
	dRow, dCol int
}

var SurroundingOffsets = [8]RelativeOffset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (p Position) CanApply(o RelativeOffset) bool {
	return p.row+o.dRow >= 0 && p.col+o.dCol >= 0
}

// panics [AssertionError]
func (p Position) Apply(o RelativeOffset) Position {
	return At(p.row+o.dRow, p.col+o.dCol)
}

func (p Position) InBounds(rows, cols int) bool {
	return p.row < rows && p.col < cols
}

// Neighbors returns the surrounding positions that fall inside a rows x cols
// grid. Corner and edge cells have fewer than eight.
func (p Position) Neighbors(rows, cols int) []Position {
	ns := make([]Position, 0, len(SurroundingOffsets))
	for _, o := range SurroundingOffsets {
		if !p.CanApply(o) {
			continue
		}
		if n := p.Apply(o); n.InBounds(rows, cols) {
			ns = append(ns, n)
		}
	}
	return ns
}
