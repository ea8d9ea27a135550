package level

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-console/internal/board"
)

//go:embed levels.yaml
var presetsYAML []byte

// MaxCols is bounded by the single-letter column notation of the console.
const MaxCols = 26

var ErrUnknownLevel = errors.New("unknown level")

type Level struct {
	Name  string `yaml:"name"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

func (l Level) String() string {
	return fmt.Sprintf("%s %dx%d(%d)", l.Name, l.Rows, l.Cols, l.Mines)
}

func (l Level) Validate() error {
	if l.Cols > MaxCols {
		return fmt.Errorf("level %s: at most %d columns are supported", l.Name, MaxCols)
	}
	if err := l.Params(board.WinLenient).Validate(); err != nil {
		return fmt.Errorf("level %s: %w", l.Name, err)
	}
	return nil
}

func (l Level) Params(rule board.WinRule) board.Params {
	return board.Params{
		Rows:          l.Rows,
		Cols:          l.Cols,
		LandMineCount: l.Mines,
		WinRule:       rule,
	}
}

// Spec is the compact "rows:cols:mines" form accepted by [ParseSpec].
func (l Level) Spec() string {
	return fmt.Sprintf("%d:%d:%d", l.Rows, l.Cols, l.Mines)
}

func ParseSpec(spec string) (Level, error) {
	l := Level{Name: "custom"}
	sspec := strings.ReplaceAll(spec, ":", " ")
	n, err := fmt.Sscanf(sspec, "%d %d %d", &l.Rows, &l.Cols, &l.Mines)
	if n != 3 || err != nil {
		return Level{}, fmt.Errorf(
			`invalid level spec (spec = "%s", n = %d, err = %w)`,
			spec, n, err,
		)
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

type presetFile struct {
	Levels []Level `yaml:"levels"`
}

func Presets() ([]Level, error) {
	var f presetFile
	if err := yaml.Unmarshal(presetsYAML, &f); err != nil {
		return nil, fmt.Errorf("unable to parse level presets: %w", err)
	}
	for _, l := range f.Levels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Levels, nil
}

func Lookup(name string) (Level, error) {
	presets, err := Presets()
	if err != nil {
		return Level{}, err
	}
	for _, l := range presets {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
}
