// Package colorlog is a small slog handler that prefixes records with a
// label and colors them by level.
package colorlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorDebug = "\033[36m"
	colorInfo  = "\033[32m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
	colorReset = "\033[0m"
)

type ColorLogHandler struct {
	label  string
	output io.Writer
	color  bool
	attrs  []slog.Attr
}

// New returns a labeled logger that always colors its output.
func New(label string) *slog.Logger {
	return slog.New(&ColorLogHandler{
		label:  label,
		output: os.Stderr,
		color:  true,
	})
}

// NewAuto is New, except colors are dropped when stderr is not a
// terminal (piped or redirected output stays clean).
func NewAuto(label string) *slog.Logger {
	return slog.New(&ColorLogHandler{
		label:  label,
		output: os.Stderr,
		color:  term.IsTerminal(int(os.Stderr.Fd())),
	})
}

func (h *ColorLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelDebug
}

func (h *ColorLogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format("15:04:05.000"))
		b.WriteString(" ")
	}
	b.WriteString(h.label)
	b.WriteString(" ")
	b.WriteString(h.paint(levelColor(r.Level), r.Level.String()))
	b.WriteString(" ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, a)
		return true
	})
	b.WriteString("\n")

	_, err := io.WriteString(h.output, b.String())
	return err
}

func (h *ColorLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *ColorLogHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the label already scopes the logger.
	return h
}

func (h *ColorLogHandler) writeAttr(b *strings.Builder, a slog.Attr) {
	fmt.Fprintf(b, " %s[%s %s%s=%s%v %s]%s",
		h.c(colorDebug), h.c(colorReset),
		a.Key, h.c(colorDebug), h.c(colorReset), a.Value.Any(),
		h.c(colorDebug), h.c(colorReset))
}

func (h *ColorLogHandler) paint(color, s string) string {
	if !h.color {
		return s
	}
	return color + s + colorReset
}

func (h *ColorLogHandler) c(code string) string {
	if !h.color {
		return ""
	}
	return code
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorError
	case level >= slog.LevelWarn:
		return colorWarn
	case level >= slog.LevelInfo:
		return colorInfo
	default:
		return colorDebug
	}
}
