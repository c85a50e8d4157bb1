package logtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// Option configures the test handler.
type Option func(*config)

type config struct {
	level slog.Leveler
	attrs []slog.Attr
}

// WithLevel sets the minimum record level. Records below it are dropped by
// Enabled before any formatting work happens.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithAttrs adds static attributes applied to every record.
// Empty attribute lists are ignored.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// Handler returns a slog.Handler that writes records through tb.Log, so log
// output interleaves with test output and only surfaces for failing tests
// (or under -v). The rendered line omits the timestamp: the test runner
// already orders output, and stable lines make assertions on captured logs
// practical.
func Handler(tb testing.TB, opts ...Option) slog.Handler {
	cfg := &config{level: slog.LevelDebug}
	for _, opt := range opts {
		opt(cfg)
	}
	h := &tbHandler{tb: tb, level: cfg.level}
	if len(cfg.attrs) > 0 {
		return h.WithAttrs(cfg.attrs)
	}
	return h
}

// Logger returns a *slog.Logger backed by Handler.
func Logger(tb testing.TB, opts ...Option) *slog.Logger {
	return slog.New(Handler(tb, opts...))
}

// tbHandler renders records as "LEVEL message key=value ..." lines.
// Attributes added via WithAttrs are pre-rendered into prefix, and WithGroup
// qualifies subsequent attribute keys per the slog handler contract.
type tbHandler struct {
	tb     testing.TB
	level  slog.Leveler
	prefix string // pre-rendered static attrs, with leading space
	groups string // dot-joined open groups, with trailing dot
}

func (h *tbHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *tbHandler) Handle(_ context.Context, rec slog.Record) error {
	h.tb.Helper()

	var sb strings.Builder
	sb.WriteString(rec.Level.String())
	sb.WriteString(" ")
	sb.WriteString(rec.Message)
	sb.WriteString(h.prefix)
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.groups, a)
		return true
	})
	h.tb.Log(sb.String())
	return nil
}

func (h *tbHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		appendAttr(&sb, h.groups, a)
	}
	next.prefix = sb.String()
	return &next
}

func (h *tbHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = h.groups + name + "."
	return &next
}

func appendAttr(sb *strings.Builder, groups string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, prefix, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", groups, a.Key, a.Value.Any())
}
