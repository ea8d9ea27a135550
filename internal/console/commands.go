package console

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-console/internal/board"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrInvalidCell    = errors.New("invalid cell")
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type Action int

const (
	Open Action = iota + 1
	Flag
	Restart
	Help
	Quit
)

func (a Action) String() string {
	switch a {
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Restart:
		return "restart"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "!"
	}
}

type Command struct {
	Action   Action
	Position board.Position
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o":       1,
	"open":    1,
	"f":       1,
	"flag":    1,
	"r":       0,
	"restart": 0,
	"h":       0,
	"help":    0,
	"q":       0,
	"quit":    0,
}

var commandActions = map[string]Action{
	"o":       Open,
	"open":    Open,
	"f":       Flag,
	"flag":    Flag,
	"r":       Restart,
	"restart": Restart,
	"h":       Help,
	"help":    Help,
	"q":       Quit,
	"quit":    Quit,
}

type cellRef struct {
	Col string `schema:"col,required"`
	Row int    `schema:"row,required"`
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z'
}

// ParseCell converts letter+number notation into a position: "a1" is the
// top-left cell, letters select the column.
func ParseCell(s string) (board.Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	i := strings.IndexFunc(s, func(c rune) bool { return !isLetter(c) })
	if i <= 0 {
		return board.Position{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}

	var ref cellRef
	if err := dec.Decode(&ref, map[string][]string{
		"col": {s[:i]},
		"row": {s[i:]},
	}); err != nil {
		return board.Position{}, fmt.Errorf("%w: %q: %w", ErrInvalidCell, s, err)
	}
	if len(ref.Col) != 1 || ref.Row < 1 {
		return board.Position{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}

	return board.At(ref.Row-1, int(ref.Col[0]-'a')), nil
}

// FormatCell is the inverse of [ParseCell].
func FormatCell(p board.Position) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col()), p.Row()+1)
}

func ParseCommand(c string) (Command, error) {
	parts := strings.Fields(strings.ToLower(c))
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf("%w: %s takes %d", ErrArgCount, parts[0], nargs)
	}

	cmd := Command{Action: commandActions[parts[0]]}
	if nargs == 1 {
		p, err := ParseCell(parts[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Position = p
	}
	return cmd, nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Commands yields the ';'-separated commands of a line in order, skipping
// blank pieces.
func Commands(line string) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for _, piece := range byPiece(line, ";") {
			if strings.TrimSpace(piece) == "" {
				continue
			}
			if !yield(ParseCommand(piece)) {
				return
			}
		}
	}
}
