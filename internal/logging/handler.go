package logging

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// timeLayout matches "2024-03-01 14:05:09,123".
const timeLayout = "2006-01-02 15:04:05,000"

// sinkHandler is a slog.Handler that renders one sink's text format and drops
// records below the sink threshold.
type sinkHandler struct {
	mu        *sync.Mutex // Shared by clones from WithAttrs/WithGroup
	w         io.Writer
	threshold slog.Level
	format    Format
	name      string
	styles    consoleStyles // nil means plain level names

	attrs  string // Preformatted " key=value" pairs from WithAttrs
	prefix string // Group prefix for keys, e.g. "req."
}

func newSinkHandler(w io.Writer, sink SinkConfig, name string) *sinkHandler {
	return &sinkHandler{
		mu:        &sync.Mutex{},
		w:         w,
		threshold: sink.Threshold.Level(),
		format:    sink.Format,
		name:      name,
	}
}

// Enabled reports whether records at l pass this sink's threshold.
func (h *sinkHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.threshold
}

// Handle writes r as a single line.
func (h *sinkHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	level := h.levelName(severityOf(r.Level))
	switch h.format {
	case FormatDetailed:
		t := r.Time
		if t.IsZero() {
			t = time.Now()
		}
		sb.WriteString(t.Format(timeLayout))
		sb.WriteString(" - ")
		sb.WriteString(h.name)
		sb.WriteString(" - ")
		sb.WriteString(level)
		sb.WriteString(" - ")
		sb.WriteString(r.Message)
	default:
		sb.WriteString(level)
		sb.WriteByte(':')
		sb.WriteString(h.name)
		sb.WriteByte(':')
		sb.WriteString(r.Message)
	}

	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a handler that appends attrs to every line.
func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}

	clone := *h
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *sinkHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *sinkHandler) levelName(s Severity) string {
	if h.styles != nil {
		return h.styles.render(s)
	}
	return s.String()
}

// appendAttr writes a as " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, groupPrefix, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		return strconv.Quote(s)
	}
	return s
}

// multiHandler fans a record out to every handler whose threshold it passes.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

// Enabled reports whether any sink accepts records at l.
func (m *multiHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

// Handle passes r to each enabled handler. Every sink is tried; the first
// write error is returned.
func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
