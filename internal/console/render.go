package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-console/internal/board"
)

// View is the read-only side of a board.
type View interface {
	RowSize() int
	ColSize() int
	Snapshot(board.Position) board.Snapshot
}

type styles struct {
	header, hidden, flag, mine, empty lipgloss.Style
	numbers                           [8]lipgloss.Style
	win, lose, warn, hint, label      lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		s := styles{header: plain, hidden: plain, flag: plain, mine: plain, empty: plain}
		for i := range s.numbers {
			s.numbers[i] = plain
		}
		s.win, s.lose, s.warn, s.hint, s.label = plain, plain, plain, plain, plain
		return s
	}
	var s styles
	s.header = r.NewStyle().Foreground(lipgloss.Color("244"))
	s.hidden = r.NewStyle().Foreground(lipgloss.Color("250"))
	s.flag = r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	s.mine = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.empty = r.NewStyle().Foreground(lipgloss.Color("238"))
	for i, c := range []string{"12", "10", "9", "93", "124", "37", "255", "244"} {
		s.numbers[i] = r.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}
	s.win = r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	s.lose = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s.warn = r.NewStyle().Foreground(lipgloss.Color("214"))
	s.hint = r.NewStyle().Foreground(lipgloss.Color("248"))
	s.label = r.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Bold(true)
	return s
}

func (s styles) cell(snap board.Snapshot) lipgloss.Style {
	switch snap.Status {
	case board.SnapshotFlagged:
		return s.flag
	case board.SnapshotLandMine:
		return s.mine
	case board.SnapshotEmpty:
		return s.empty
	case board.SnapshotNumber:
		if 1 <= snap.Count && snap.Count <= 8 {
			return s.numbers[snap.Count-1]
		}
	}
	return s.hidden
}

type Renderer struct {
	out    io.Writer
	signs  map[board.SnapshotStatus]SignFunc
	styles styles
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:    out,
		signs:  DefaultSigns,
		styles: newStyles(out, color),
	}
}

// WithSigns replaces the sign table.
func (r *Renderer) WithSigns(signs map[board.SnapshotStatus]SignFunc) *Renderer {
	r.signs = signs
	return r
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) Welcome() {
	r.println(r.styles.label.Render(" MINESWEEPER "))
	r.println(r.styles.hint.Render("type h for help"))
}

func (r *Renderer) Help() {
	r.println(r.styles.hint.Render(strings.Join([]string{
		"o <cell>   open a cell, e.g. o a1",
		"f <cell>   flag a cell",
		"r          start a new round",
		"q          quit",
		"commands can be chained with ';'",
	}, "\n")))
}

func (r *Renderer) Board(v View) error {
	var b strings.Builder

	b.WriteString("    ")
	for col := range v.ColSize() {
		b.WriteString(r.styles.header.Render(string(rune('a'+col))) + " ")
	}
	b.WriteString("\n")

	for row := range v.RowSize() {
		b.WriteString(r.styles.header.Render(fmt.Sprintf("%2d", row+1)) + "  ")
		for col := range v.ColSize() {
			snap := v.Snapshot(board.At(row, col))
			sign, err := Sign(r.signs, snap)
			if err != nil {
				return fmt.Errorf("cell %s: %w", FormatCell(board.At(row, col)), err)
			}
			b.WriteString(r.styles.cell(snap).Render(sign) + " ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) Status(level string, flagsLeft int, status board.GameStatus) {
	r.println(fmt.Sprintf("%s  %s %d  %s %s",
		r.styles.label.Render(" "+strings.ToUpper(level)+" "),
		r.styles.hint.Render("flags"), flagsLeft,
		r.styles.hint.Render("status"), status,
	))
}

func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, "> ")
}

func (r *Renderer) Win() {
	r.println(r.styles.win.Render("All land mines found. GAME CLEAR!"))
	r.println(r.styles.hint.Render("r to play again, q to quit"))
}

func (r *Renderer) Lose() {
	r.println(r.styles.lose.Render("You stepped on a land mine. GAME OVER!"))
	r.println(r.styles.hint.Render("r to play again, q to quit"))
}

func (r *Renderer) RoundOver() {
	r.println(r.styles.warn.Render("this round is over: r to play again, q to quit"))
}

func (r *Renderer) Error(err error) {
	r.println(r.styles.warn.Render("error: " + err.Error()))
}

func (r *Renderer) Summary(played, won, lost int) {
	r.println(r.styles.hint.Render(
		fmt.Sprintf("rounds played %d, won %d, lost %d", played, won, lost),
	))
}
