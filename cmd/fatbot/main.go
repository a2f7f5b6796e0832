package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/fatbot/pkg"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := pkg.NewFlagSet("fatbot")
	plain := flags.Bool("plain", false, "line mode even on a terminal")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	cfg, err := pkg.LoadConfig(flags)
	if err != nil {
		return err
	}

	tui := !*plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if tui && cfg.LogFile == "" {
		// the client owns the screen
		cfg.LogFile = os.DevNull
	}
	log, err := pkg.NewLogger(cfg, "client")
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	player, err := pkg.NewPlayer(cfg, log)
	if err != nil {
		return err
	}
	log.Infow("New client", "player", player.Name, "strategy", player.Strategy.Name(), "depth", cfg.Depth)

	if !tui {
		return pkg.NewConsole(player, os.Stdin, os.Stdout, log).Run(ctx)
	}
	theme, err := pkg.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}
	return pkg.NewClient(ctx, player, theme, log).Run()
}
