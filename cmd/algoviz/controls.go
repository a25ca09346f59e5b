package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// remote is the control surface a run exposes to the keyboard.
type remote interface {
	Pause() bool
	Resume() bool
	Toggle() bool
	Cancel()
}

// stepper is implemented by remotes that can advance one instruction.
// A manual stepper only moves on key presses, so its run ends with the reader.
type stepper interface {
	Step() bool
	Manual() bool
}

// drive runs work and, when stdin is a terminal, a control reader beside
// it. The reader stops when work returns.
func drive(ctx context.Context, rc remote, work func(ctx context.Context) error) error {
	var in io.Reader
	if isTerminal(os.Stdin) {
		in = os.Stdin
	}

	return driveWith(ctx, in, rc, work)
}

func driveWith(ctx context.Context, in io.Reader, rc remote, work func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return work(gctx)
	})
	if in != nil {
		g.Go(func() error {
			readControls(gctx, in, rc, app.logger)
			if st, ok := rc.(stepper); ok && st.Manual() {
				cancel()
			}
			return nil
		})
	}

	return g.Wait()
}

// readControls applies one command per key until ctx ends, input runs dry
// or q is read. Keys take effect when the line is submitted; a blank line
// toggles pause.
func readControls(ctx context.Context, in io.Reader, rc remote, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if strings.TrimSpace(line) == "" {
				line = "t"
			}
			for _, key := range line {
				if !apply(rc, key, logger) {
					return
				}
			}
		}
	}
}

// apply runs the command bound to key. It returns false after a cancel.
func apply(rc remote, key rune, logger *slog.Logger) bool {
	switch key {
	case 'p':
		logger.Debug("control", "command", "pause", "changed", rc.Pause())
	case 'r':
		logger.Debug("control", "command", "resume", "changed", rc.Resume())
	case 't':
		logger.Debug("control", "command", "toggle", "paused", rc.Toggle())
	case 's':
		if st, ok := rc.(stepper); ok {
			logger.Debug("control", "command", "step", "advanced", st.Step())
		}
	case 'q':
		logger.Debug("control", "command", "cancel")
		rc.Cancel()
		return false
	}

	return true
}
