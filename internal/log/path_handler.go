package log

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// MaskValue replaces the home directory prefix in logged paths.
const MaskValue = "~"

// PathHandler wraps an slog.Handler and rewrites string attribute values
// that start with the user's home directory. Seed and config paths are the
// main values logged by this tool, and they frequently live under $HOME.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the user's home directory. Empty disables masking.
	home string
}

// NewPathHandler creates a PathHandler wrapping the given handler.
// If handler is nil, the returned PathHandler uses slog.Default().Handler().
// When the home directory cannot be determined, records pass through unchanged.
func NewPathHandler(handler slog.Handler) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.home == "" {
		return h.handler.Handle(ctx, r)
	}

	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(maskedAttrs), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// maskAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if h.home == "" || a.Value.Kind() != slog.KindString {
		return a
	}

	s := a.Value.String()
	if !strings.HasPrefix(s, h.home) {
		return a
	}
	return slog.String(a.Key, MaskValue+strings.TrimPrefix(s, h.home))
}
