package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// logFile is the --log-file handle, closed by closeLogFile.
var logFile *os.File

type simpleHandler struct {
	level  slog.Level
	writer io.Writer
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log level must be one of: debug, info, warn, error")
}

// setupLogging installs the default slog logger. Logs go to stderr unless
// logFile is set, in which case they are appended to that file.
func setupLogging(level string, path string) error {
	logLevel, err := parseLogLevel(level)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		if err := closeLogFile(context.Background(), nil); err != nil {
			f.Close()
			return err
		}
		logFile = f
		writer = f
	}

	handler := &simpleHandler{
		level:  logLevel,
		writer: writer,
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func setupLoggingFromFlags(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	return ctx, setupLogging(cmd.String("log"), cmd.String("log-file"))
}

// closeLogFile closes the --log-file handle, if any, and sends further logs to
// stderr.
func closeLogFile(_ context.Context, _ *cli.Command) error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	if h, ok := slog.Default().Handler().(*simpleHandler); ok && h.writer == f {
		slog.SetDefault(slog.New(&simpleHandler{level: h.level, writer: os.Stderr}))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot close log file: %w", err)
	}
	return nil
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *simpleHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()
	msg := r.Message
	var attrs []string
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s='%v'", a.Key, a.Value))
		return true
	})
	if len(attrs) > 0 {
		fmt.Fprintf(h.writer, "%s: %s (%s)\n", level, msg, strings.Join(attrs, " "))
	} else {
		fmt.Fprintf(h.writer, "%s: %s\n", level, msg)
	}
	return nil
}

func (h *simpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(name string) slog.Handler {
	return h
}
