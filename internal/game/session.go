package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/board"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/level"
	"github.com/vancomm/minesweeper-console/internal/stats"
)

var (
	// ErrQuit is returned by [Session.Run] when the player quits or the
	// input ends.
	ErrQuit      = errors.New("quit")
	ErrRoundOver = errors.New("round is over")
)

type Options struct {
	Logger   *logrus.Logger
	Level    level.Level
	Board    *board.Board
	Input    io.Reader
	Renderer *console.Renderer
	Stats    *stats.Recorder
}

// Session plays rounds on a single board until the player quits.
type Session struct {
	log      *logrus.Logger
	round    *logrus.Entry
	level    level.Level
	board    *board.Board
	in       io.Reader
	renderer *console.Renderer
	stats    *stats.Recorder
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	rec := opts.Stats
	if rec == nil {
		rec = stats.New()
	}
	return &Session{
		log:      logger,
		round:    logrus.NewEntry(logger),
		level:    opts.Level,
		board:    opts.Board,
		in:       opts.Input,
		renderer: opts.Renderer,
		stats:    rec,
	}
}

func (s *Session) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			readErr <- ctx.Err()
			return
		}
	}
	readErr <- scanner.Err()
}

// Run blocks until the player quits ([ErrQuit]), ctx is done (ctx.Err()) or
// the board cannot be initialized or rendered.
func (s *Session) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.readLines(ctx, lines, readErr)

	defer s.summarize()

	s.renderer.Welcome()
	if err := s.startRound(); err != nil {
		return err
	}
	if err := s.show(); err != nil {
		return err
	}

	for {
		s.renderer.Prompt()
		select {
		case <-ctx.Done():
			s.log.Info("session interrupted")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					return fmt.Errorf("unable to read input: %w", err)
				}
				s.log.Info("end of input")
				return ErrQuit
			}
			if err := s.handleLine(line); err != nil {
				return err
			}
		}
	}
}

func (s *Session) handleLine(line string) error {
	s.round.Debug("> ", line)
	for cmd, err := range console.Commands(line) {
		if err == nil {
			err = s.validate(cmd)
		}
		if errors.Is(err, ErrRoundOver) {
			s.renderer.RoundOver()
			break
		}
		if err != nil {
			s.round.WithError(err).Debug("rejected command")
			s.renderer.Error(err)
			break
		}
		if err := s.execute(cmd); err != nil {
			return err
		}
	}
	return s.show()
}

func (s *Session) validate(cmd console.Command) error {
	switch cmd.Action {
	case console.Open, console.Flag:
		if s.board.IsInvalidPosition(cmd.Position) {
			return fmt.Errorf("%w: %s is outside the %dx%d board",
				console.ErrInvalidCell, console.FormatCell(cmd.Position),
				s.board.RowSize(), s.board.ColSize(),
			)
		}
		if !s.board.IsInProgress() {
			return ErrRoundOver
		}
	}
	return nil
}

func (s *Session) execute(cmd console.Command) error {
	switch cmd.Action {
	case console.Quit:
		s.round.Info("player quit")
		return ErrQuit
	case console.Help:
		s.renderer.Help()
	case console.Restart:
		s.round.WithField("status", s.board.Status()).Info("round abandoned")
		return s.startRound()
	case console.Open, console.Flag:
		if cmd.Action == console.Open {
			s.board.OpenAt(cmd.Position)
		} else {
			s.board.FlagAt(cmd.Position)
		}
		s.stats.Action(cmd.Action.String())
		s.round.WithFields(logrus.Fields{
			"action": cmd.Action,
			"cell":   console.FormatCell(cmd.Position),
			"status": s.board.Status(),
		}).Debug("action applied")
		if !s.board.IsInProgress() {
			s.finishRound()
		}
	}
	return nil
}

func (s *Session) startRound() error {
	if err := s.board.Initialize(); err != nil {
		return fmt.Errorf("unable to start a round: %w", err)
	}
	s.round = s.log.WithField("round", uuid.NewString())
	s.stats.RoundStarted()
	s.round.WithField("level", s.level.String()).Info("round started")
	return nil
}

func (s *Session) finishRound() {
	if s.board.IsWin() {
		s.stats.RoundWon()
	} else {
		s.stats.RoundLost()
	}
	s.round.WithField("status", s.board.Status()).Info("round over")
}

func (s *Session) show() error {
	if err := s.renderer.Board(s.board); err != nil {
		s.round.WithError(err).Error("unable to render board")
		return err
	}
	s.renderer.Status(s.level.Name, s.board.FlagsLeft(), s.board.Status())
	switch {
	case s.board.IsWin():
		s.renderer.Win()
	case s.board.IsLose():
		s.renderer.Lose()
	}
	return nil
}

func (s *Session) summarize() {
	sum, err := s.stats.Summary()
	if err != nil {
		s.log.WithError(err).Warn("unable to gather stats")
		return
	}
	s.log.WithFields(logrus.Fields{
		"started": sum.Started,
		"won":     sum.Won,
		"lost":    sum.Lost,
		"actions": sum.Actions,
	}).Info("session summary")
	s.renderer.Summary(sum.Started, sum.Won, sum.Lost)
}

// Stats exposes the session counters.
func (s *Session) Stats() *stats.Recorder {
	return s.stats
}
