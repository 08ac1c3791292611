package testutil

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// LogEntry is one captured slog record. Attrs added through Logger.With and
// WithGroup are flattened into it, group names joined with dots.
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// CaptureHandler records everything logged through it so tests can assert on
// request logging. Handlers derived with WithAttrs or WithGroup share the
// parent's sink.
type CaptureHandler struct {
	sink   *logSink
	attrs  []slog.Attr
	groups []string
}

func NewCaptureHandler() *CaptureHandler {
	return &CaptureHandler{sink: &logSink{}}
}

func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *CaptureHandler) Handle(_ context.Context, record slog.Record) error {
	entry := LogEntry{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   make(map[string]any, len(h.attrs)+record.NumAttrs()),
	}
	for _, attr := range h.attrs {
		flatten(entry.Attrs, "", attr)
	}
	prefix := groupPrefix(h.groups)
	record.Attrs(func(attr slog.Attr) bool {
		flatten(entry.Attrs, prefix, attr)
		return true
	})

	h.sink.mu.Lock()
	h.sink.entries = append(h.sink.entries, entry)
	h.sink.mu.Unlock()
	return nil
}

func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := groupPrefix(h.groups)
	next := &CaptureHandler{sink: h.sink, groups: h.groups, attrs: slices.Clone(h.attrs)}
	for _, attr := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return next
}

func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &CaptureHandler{sink: h.sink, attrs: h.attrs, groups: append(slices.Clone(h.groups), name)}
}

func groupPrefix(groups []string) string {
	var prefix string
	for _, g := range groups {
		prefix += g + "."
	}
	return prefix
}

func flatten(dst map[string]any, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = prefix + attr.Key + "."
		}
		for _, a := range value.Group() {
			flatten(dst, inner, a)
		}
		return
	}
	dst[prefix+attr.Key] = value.Any()
}

// Entries returns a copy of everything captured so far.
func (h *CaptureHandler) Entries() []LogEntry {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return slices.Clone(h.sink.entries)
}

func (h *CaptureHandler) EntriesAt(level slog.Level) []LogEntry {
	var out []LogEntry
	for _, e := range h.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first entry logged at level with the exact message.
func (h *CaptureHandler) Find(level slog.Level, message string) (LogEntry, bool) {
	for _, e := range h.EntriesAt(level) {
		if e.Message == message {
			return e, true
		}
	}
	return LogEntry{}, false
}

func (h *CaptureHandler) Has(level slog.Level, message string) bool {
	_, ok := h.Find(level, message)
	return ok
}

func (h *CaptureHandler) Count(level slog.Level) int {
	return len(h.EntriesAt(level))
}

func (h *CaptureHandler) Reset() {
	h.sink.mu.Lock()
	h.sink.entries = nil
	h.sink.mu.Unlock()
}
