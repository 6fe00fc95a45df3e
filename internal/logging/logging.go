package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Streams are the console outputs Setup can write to. Nil writers default to
// os.Stdout and os.Stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer

	// NoColor disables level colors even on a terminal.
	NoColor bool
}

// Setup activates the sinks described by r and returns the logger every call
// site should use, plus a cleanup function that closes the log file.
//
// With both sinks disabled the logger discards everything.
func Setup(r Resolved, s Streams) (*slog.Logger, func(), error) {
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = os.Stderr
	}

	var handlers []slog.Handler
	cleanup := func() {}

	if r.Console.Enabled {
		w := s.Stdout
		if r.Console.Target == TargetStderr {
			w = s.Stderr
		}
		h := newSinkHandler(w, r.Console, r.Name)
		if !s.NoColor && !DetectNoColor() && IsTTY(w) {
			h.styles = newConsoleStyles(w)
		}
		handlers = append(handlers, h)
	}

	if r.File.Enabled {
		writer, err := OpenAppend(r.File.Path)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, newSinkHandler(writer, r.File, r.Name))
		cleanup = func() {
			_ = writer.Sync()
			_ = writer.Close()
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), cleanup, nil
	case 1:
		return slog.New(handlers[0]), cleanup, nil
	}
	return slog.New(newMultiHandler(handlers...)), cleanup, nil
}

// Critical logs msg at LevelCritical.
func Critical(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger.Log(ctx, LevelCritical, msg, args...)
}
