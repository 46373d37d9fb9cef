// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command vgdemo runs the vector-graphics demo harness on the software
// accelerator.
//
// Keys '1' to '5' select a demo, Enter or Esc return to the animation and
// Ctrl+D quits. Frames can be dumped as PNG files with -snapshots.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/config"
	"github.com/gogpu/vgdemo/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vgdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := newFlags(os.Args[0], flag.ExitOnError)
	if err := flags.parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if err := flags.apply(&cfg); err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if flags.logFile != "" {
		f, err := os.Create(flags.logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	vgdemo.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Log.Level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flags.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.duration)
		defer cancel()
	}

	opts := []app.Option{app.WithOutput(os.Stdout)}
	if !flags.headless {
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("raw terminal: %w", err)
			}
			defer term.Restore(fd, state)
		}
		opts = append(opts, app.WithInput(os.Stdin))
	}

	a, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer a.Close()

	start := time.Now()
	err = a.Run(ctx)
	vgdemo.Logger().Info("vgdemo: stopped", "ticks", a.Loop().Ticks(), "uptime", time.Since(start).Round(time.Millisecond))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
