// Package zaplurk adapts lurk result reporting onto a zap logger.
//
// The handlers map lurk's taxonomy onto zap levels: error results (any
// negative value) log at Error, everything else at Info. The raw result value
// and its taxonomy name travel as structured fields, so the 8-hex-digit line
// format of lurk's default reporters is traded for zap's encoder.
//
// Install on one channel or both:
//
//	logger, _ := zap.NewProduction()
//	lurk.SetConfig(&lurk.Config{
//	    LogFn: zaplurk.LogHandler(logger),
//	    ErrFn: zaplurk.ErrHandler(logger),
//	})
//
// The handlers hold the supplied logger for as long as they are installed;
// syncing and closing it remains the caller's job.
package zaplurk

import (
	"go.uber.org/zap"

	"github.com/kcmw3e/lurk"
)

// LogHandler returns a lurk.LogHandler that writes to logger.
func LogHandler(logger *zap.Logger) lurk.LogHandler {
	return func(result lurk.Result, msg string) {
		log(logger, result, msg,
			zap.Int32("result", int32(result)),
			zap.Stringer("kind", result),
		)
	}
}

// ErrHandler returns a lurk.ErrHandler that writes to logger. caller and loc
// are attached verbatim as fields; empty values are omitted rather than
// replaced with placeholders, since zap encoders already mark absent fields.
func ErrHandler(logger *zap.Logger) lurk.ErrHandler {
	return func(result lurk.Result, caller, loc, msg string) {
		fields := []zap.Field{
			zap.Int32("result", int32(result)),
			zap.Stringer("kind", result),
		}
		if caller != "" {
			fields = append(fields, zap.String("caller", caller))
		}
		if loc != "" {
			fields = append(fields, zap.String("loc", loc))
		}
		log(logger, result, msg, fields...)
	}
}

func log(logger *zap.Logger, result lurk.Result, msg string, fields ...zap.Field) {
	if lurk.IsError(result) {
		logger.Error(msg, fields...)
		return
	}
	logger.Info(msg, fields...)
}
