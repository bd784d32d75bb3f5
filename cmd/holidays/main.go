package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	_ "time/tzdata"

	"github.com/chzyer/readline"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"holidays.xdoubleu.com/apps/holidays"
	"holidays.xdoubleu.com/internal/config"
)

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stderr, nil)))

	if err := run(logger, cfg); err != nil {
		logger.Error("holiday manager stopped", logging.ErrAttr(err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := holidays.New(logger, cfg)

	if _, err := app.Seed(ctx); err != nil {
		return fmt.Errorf("seeding holiday list: %w", err)
	}

	reader, err := newReader(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	fmt.Fprintln(os.Stdout, "Holiday Management")
	fmt.Fprintln(os.Stdout, "==================")
	fmt.Fprintf(os.Stdout, "There are %d holidays stored in the system.\n", app.Count())

	return NewShell(app, reader, os.Stdout).Run(ctx)
}

func newReader(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}
