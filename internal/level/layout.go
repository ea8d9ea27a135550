package level

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-console/internal/board"
)

// Layout is a hand-made board: every line of Board is a row, '*' marks a
// land mine and '.' a safe cell.
type Layout struct {
	Name  string `yaml:"name"`
	Board string `yaml:"board"`
}

func LoadLayout(path string) (Level, *board.FixedPlacer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, nil, fmt.Errorf("unable to read layout: %w", err)
	}
	return ParseLayout(data)
}

func ParseLayout(data []byte) (Level, *board.FixedPlacer, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Level{}, nil, fmt.Errorf("unable to parse layout: %w", err)
	}

	name := layout.Name
	if name == "" {
		name = "layout"
	}
	l := Level{Name: name}

	var mines []board.Position
	for row, line := range strings.Split(strings.TrimSpace(layout.Board), "\n") {
		line = strings.TrimSpace(line)
		if row == 0 {
			l.Cols = len(line)
		} else if len(line) != l.Cols {
			return Level{}, nil, fmt.Errorf(
				"layout row %d has %d cells, expected %d", row+1, len(line), l.Cols,
			)
		}
		for col, c := range line {
			switch c {
			case '*':
				mines = append(mines, board.At(row, col))
			case '.':
			default:
				return Level{}, nil, fmt.Errorf("unexpected %q in layout row %d", c, row+1)
			}
		}
		l.Rows++
	}
	l.Mines = len(mines)

	if err := l.Validate(); err != nil {
		return Level{}, nil, err
	}
	return l, board.NewFixedPlacer(mines...), nil
}
