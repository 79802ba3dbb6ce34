// Package sloglurk adapts lurk result reporting onto log/slog, for programs
// already standardized on the stdlib structured logger. The level mapping and
// field shape match the zaplurk package: error results (any negative value)
// log at Error, everything else at Info, with the raw result value and its
// taxonomy name as attributes.
//
//	lurk.SetConfig(&lurk.Config{
//	    LogFn: sloglurk.LogHandler(slog.Default()),
//	    ErrFn: sloglurk.ErrHandler(slog.Default()),
//	})
package sloglurk

import (
	"context"
	"log/slog"

	"github.com/kcmw3e/lurk"
)

// LogHandler returns a lurk.LogHandler that writes to logger.
func LogHandler(logger *slog.Logger) lurk.LogHandler {
	return func(result lurk.Result, msg string) {
		logger.LogAttrs(context.Background(), level(result), msg,
			slog.Int("result", int(result)),
			slog.String("kind", result.String()),
		)
	}
}

// ErrHandler returns a lurk.ErrHandler that writes to logger. Empty caller and
// loc values are omitted rather than replaced with placeholders.
func ErrHandler(logger *slog.Logger) lurk.ErrHandler {
	return func(result lurk.Result, caller, loc, msg string) {
		attrs := []slog.Attr{
			slog.Int("result", int(result)),
			slog.String("kind", result.String()),
		}
		if caller != "" {
			attrs = append(attrs, slog.String("caller", caller))
		}
		if loc != "" {
			attrs = append(attrs, slog.String("loc", loc))
		}
		logger.LogAttrs(context.Background(), level(result), msg, attrs...)
	}
}

func level(result lurk.Result) slog.Level {
	if lurk.IsError(result) {
		return slog.LevelError
	}
	return slog.LevelInfo
}
