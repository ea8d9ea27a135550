package board

import (
	"fmt"
	"math/rand/v2"
)

// MinePlacer decides where the land mines of a new round go.
type MinePlacer interface {
	Place(set *PositionSet, count int) ([]Position, error)
}

type RandomPlacer struct {
	r *rand.Rand
}

func NewRandomPlacer(r *rand.Rand) *RandomPlacer {
	return &RandomPlacer{r: r}
}

func (p *RandomPlacer) Place(set *PositionSet, count int) ([]Position, error) {
	if count > set.Len() {
		return nil, fmt.Errorf("cannot place %d land mines on %d cells", count, set.Len())
	}
	return set.ExtractRandom(count, p.r), nil
}

// FixedPlacer places mines at the same positions every round.
type FixedPlacer struct {
	positions []Position
}

func NewFixedPlacer(positions ...Position) *FixedPlacer {
	return &FixedPlacer{positions: positions}
}

func (p *FixedPlacer) Place(set *PositionSet, count int) ([]Position, error) {
	if len(p.positions) != count {
		return nil, fmt.Errorf(
			"layout has %d land mines, board expects %d", len(p.positions), count,
		)
	}
	all := make(map[Position]struct{}, set.Len())
	for _, pos := range set.positions {
		all[pos] = struct{}{}
	}
	seen := make(map[Position]struct{}, count)
	for _, pos := range p.positions {
		if _, ok := all[pos]; !ok {
			return nil, fmt.Errorf("land mine %s is outside the board", pos)
		}
		if _, ok := seen[pos]; ok {
			return nil, fmt.Errorf("duplicate land mine at %s", pos)
		}
		seen[pos] = struct{}{}
	}
	return append([]Position(nil), p.positions...), nil
}
