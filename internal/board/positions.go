package board

import (
	"fmt"
	"math/rand/v2"
)

// PositionSet holds every position of a grid in row-major order.
type PositionSet struct {
	positions []Position
}

func NewPositionSet(rows, cols int) *PositionSet {
	positions := make([]Position, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			positions = append(positions, Position{row, col})
		}
	}
	return &PositionSet{positions: positions}
}

func (s *PositionSet) Len() int {
	return len(s.positions)
}

func (s *PositionSet) Positions() []Position {
	return append([]Position(nil), s.positions...)
}

// ExtractRandom picks k distinct positions without replacement.
//
// panics [AssertionError] if k exceeds the number of positions
func (s *PositionSet) ExtractRandom(k int, r *rand.Rand) []Position {
	assert(k <= len(s.positions),
		fmt.Sprintf("cannot pick %d positions out of %d", k, len(s.positions)))
	if k <= 0 {
		return nil
	}

	candidates := s.Positions()
	picked := make([]Position, 0, k)

	n := len(candidates)
	for range k {
		i := r.IntN(n)
		picked = append(picked, candidates[i])
		n--
		candidates[i] = candidates[n]
	}
	return picked
}

func (s *PositionSet) Subtract(ps []Position) []Position {
	exclude := make(map[Position]struct{}, len(ps))
	for _, p := range ps {
		exclude[p] = struct{}{}
	}
	rest := make([]Position, 0, len(s.positions))
	for _, p := range s.positions {
		if _, ok := exclude[p]; !ok {
			rest = append(rest, p)
		}
	}
	return rest
}
