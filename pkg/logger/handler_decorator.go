package logger

import (
	"context"
	"log/slog"
)

// RedactedValue replaces the value of attributes whose key is redacted.
const RedactedValue = "[REDACTED]"

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler. It adds attributes pulled from
// the record's context and blanks the values of redacted keys, at any
// group depth, before the record reaches the wrapped handler.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) *LogHandlerDecorator {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

// Redacting returns a copy of h that also redacts keys.
func (h *LogHandlerDecorator) Redacting(keys ...string) *LogHandlerDecorator {
	if len(keys) == 0 {
		return h
	}
	redact := make(map[string]struct{}, len(h.redact)+len(keys))
	for k := range h.redact {
		redact[k] = struct{}{}
	}
	for _, k := range keys {
		redact[k] = struct{}{}
	}
	return &LogHandlerDecorator{next: h.next, extractors: h.extractors, redact: redact}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.redact) > 0 {
		out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
		rec.Attrs(func(a slog.Attr) bool {
			out.AddAttrs(h.redactAttr(a))
			return true
		})
		rec = out
	}

	if ctx != nil {
		for _, ex := range h.extractors {
			if attr, ok := ex(ctx); ok {
				rec.AddAttrs(h.redactAttr(attr))
			}
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(h.redact) > 0 {
		redacted := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			redacted[i] = h.redactAttr(a)
		}
		attrs = redacted
	}
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) redactAttr(a slog.Attr) slog.Attr {
	if len(h.redact) == 0 {
		return a
	}
	if _, ok := h.redact[a.Key]; ok {
		return slog.String(a.Key, RedactedValue)
	}
	if a.Value.Kind() != slog.KindGroup {
		return a
	}

	group := a.Value.Group()
	out := make([]slog.Attr, len(group))
	for i, ga := range group {
		out[i] = h.redactAttr(ga)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
}
