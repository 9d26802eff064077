// Package logger configures the slog handler used across the binary.
package logger

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
)

// Level is shared by DefaultOptions so the level can be changed after config is parsed.
var Level = new(slog.LevelVar)

var DefaultOptions = &slog.HandlerOptions{
	Level:       Level,
	ReplaceAttr: colorizeLevel,
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgHiBlack),
	slog.LevelInfo:  color.New(color.FgCyan),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed, color.Bold),
}

func NewHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = DefaultOptions
	}
	return slog.NewTextHandler(w, opts)
}

func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

func colorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	c, ok := levelColors[level]
	if !ok {
		return a
	}

	return slog.String(a.Key, c.Sprint(level.String()))
}
