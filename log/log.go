// Package log routes the slog output of every altcal package through a single swappable sink.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
	CalendarKey  = "calendar"
)

// Error returns a slog.Attr for the provided error. The key will be ErrorKey.
func Error(e error) slog.Attr {
	return slog.Any(ErrorKey, e)
}

// Calendar returns a slog.Attr identifying a calendar by its ID. The key will be CalendarKey.
func Calendar(id string) slog.Attr {
	return slog.String(CalendarKey, id)
}

// op is an attribute or group applied to a logger before the sink was configured.
type op struct {
	attrs []slog.Attr
	group string
}

// indirectHandler defers to whatever slog.Handler is currently stored in the sink. Attributes and groups are recorded
// and replayed onto the current handler for every record, so loggers created at package init time (before To is
// called) still carry them.
type indirectHandler struct {
	h   *atomic.Pointer[slog.Handler]
	ops []op
}

func (i *indirectHandler) resolve() slog.Handler {
	p := i.h.Load()
	if p == nil {
		return nil
	}

	h := *p
	for _, o := range i.ops {
		if o.group != "" {
			h = h.WithGroup(o.group)
		} else {
			h = h.WithAttrs(o.attrs)
		}
	}

	return h
}

func (i *indirectHandler) Enabled(ctx context.Context, level slog.Level) bool {
	p := i.h.Load()
	if p == nil {
		return false
	}

	return (*p).Enabled(ctx, level)
}

func (i *indirectHandler) Handle(ctx context.Context, record slog.Record) error {
	h := i.resolve()
	if h == nil {
		return nil
	}

	return h.Handle(ctx, record)
}

func (i *indirectHandler) with(o op) *indirectHandler {
	ops := make([]op, len(i.ops), len(i.ops)+1)
	copy(ops, i.ops)

	return &indirectHandler{h: i.h, ops: append(ops, o)}
}

func (i *indirectHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return i
	}

	return i.with(op{attrs: attrs})
}

func (i *indirectHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return i
	}

	return i.with(op{group: name})
}

var _ slog.Handler = &indirectHandler{}

var (
	sink = &indirectHandler{h: &atomic.Pointer[slog.Handler]{}}
)

// To updates all slog.Logger objects used internally by altcal to write logs to the provided slog.Handler. By default,
// log values will be discarded unless To is called at least once with a non-discarding slog.Handler.
func To(h slog.Handler) {
	sink.h.Store(&h)
}

// ForComponent constructs a slog.Logger for the specified component (which is stored in an attribute with the key
// ComponentKey).
func ForComponent(component string) *slog.Logger {
	return slog.New(sink).With(slog.String(ComponentKey, component))
}
