package ast

import (
	"context"
	"log/slog"
)

// Slog wraps a Term as a slog.LogValuer so that it is only
// rendered when the record is actually emitted
func Slog(t Term) slog.LogValuer {
	return termLogValuer{t}
}

type termLogValuer struct{ Term }

func (l termLogValuer) LogValue() slog.Value {
	return slog.StringValue(TermString(l.Term))
}

// TermHandler wraps underlying so that Term attributes are rendered lazily
func TermHandler(underlying slog.Handler) slog.Handler {
	return &termLogHandler{underlying: underlying}
}

func TermLogger(underlying *slog.Logger) *slog.Logger {
	return slog.New(TermHandler(underlying.Handler()))
}

type termLogHandler struct {
	underlying slog.Handler
}

func (l *termLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *termLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapTermAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *termLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapTermAttr(attr)
	}
	return TermHandler(l.underlying.WithAttrs(wrapped))
}

func (l *termLogHandler) WithGroup(name string) slog.Handler {
	return TermHandler(l.underlying.WithGroup(name))
}

func wrapTermAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindAny {
		if asTerm, isTerm := attr.Value.Any().(Term); isTerm {
			return slog.Any(attr.Key, Slog(asTerm))
		}
	}
	return attr
}
