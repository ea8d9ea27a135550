package main

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-console/internal/board"
	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/game"
	"github.com/vancomm/minesweeper-console/internal/level"
	"github.com/vancomm/minesweeper-console/internal/stats"
)

var log = logrus.New()

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// setupLogging sends records to the rotating log file. stdout belongs to the
// game, so only warnings and errors are echoed to stderr.
func setupLogging(cfg *config.Config) error {
	logLevel, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Color})

	if cfg.Log.File == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	fileHook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
	}

	log.SetOutput(io.Discard)
	log.AddHook(fileHook)
	log.AddHook(&writer.Hook{
		Writer: os.Stderr,
		LogLevels: []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
			logrus.WarnLevel,
		},
	})
	return nil
}

// setupBoard picks the board size from, in order, a layout file, a custom
// spec or a level preset.
func setupBoard(cfg *config.Config) (level.Level, *board.Board, error) {
	var (
		lvl    level.Level
		placer board.MinePlacer
		err    error
	)
	switch {
	case cfg.Layout != "":
		var fixed *board.FixedPlacer
		lvl, fixed, err = level.LoadLayout(cfg.Layout)
		placer = fixed
	case cfg.Custom != "":
		lvl, err = level.ParseSpec(cfg.Custom)
		placer = board.NewRandomPlacer(createRand(cfg.Seed))
	default:
		lvl, err = level.Lookup(cfg.Level)
		placer = board.NewRandomPlacer(createRand(cfg.Seed))
	}
	if err != nil {
		return level.Level{}, nil, err
	}

	rule := board.WinLenient
	if cfg.StrictWin {
		rule = board.WinStrict
	}
	b, err := board.New(lvl.Params(rule), placer)
	if err != nil {
		return level.Level{}, nil, err
	}
	return lvl, b, nil
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %s\n\n%s", err, config.Usage())
		os.Exit(2)
	}

	if err := setupLogging(cfg); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("unable to set up logging: ", err)
	}
	board.Log = log

	log.Info("starting up, development = ", cfg.Development)
	log.WithFields(cfg.Fields()).Debug("config")

	lvl, b, err := setupBoard(cfg)
	if err != nil {
		log.Fatal("unable to set up board: ", err)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session := game.New(game.Options{
		Logger:   log,
		Level:    lvl,
		Board:    b,
		Input:    os.Stdin,
		Renderer: console.NewRenderer(os.Stdout, cfg.Color),
		Stats:    stats.New(),
	})

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return session.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil &&
		!errors.Is(err, game.ErrQuit) && !errors.Is(err, context.Canceled) {
		log.Errorf("exit reason: %s", err)
		stop()
		os.Exit(1)
	}
}
