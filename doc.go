// doc.go — package documentation for lurk
//
// Package lurk provides a unified result taxonomy paired with a small,
// pluggable reporting mechanism. Library and application code return a single
// Result value that encodes success, failure, boolean outcomes, and error
// conditions, and any call site can emit a diagnostic line for that result
// without hard-coding a destination or format. It is designed to be:
//   - Ergonomic at call sites (report-and-return in one expression)
//   - Cheap when silent (disabled channels and empty formats short-circuit)
//   - Policy-free about destinations (handlers swap in any backend)
//
// # The Taxonomy
//
// Results partition by sign: errors are strictly negative, ResultSuccess is
// exactly zero, statuses are strictly positive. Booleans are a separate axis
// that reuses the numeric encodings of true and false:
//
//	+------------------------+-------+----------------------------------+
//	| Result                 | Value | Collides with                    |
//	+------------------------+-------+----------------------------------+
//	| ResultInternalError    |  -3   |                                  |
//	| ResultInvalidObject    |  -2   |                                  |
//	| ResultBadParam         |  -1   |                                  |
//	| ResultSuccess          |   0   | ResultValidObject, ResultFalse   |
//	| ResultFailure          |   1   | ResultTrue                       |
//	| ResultDone             |   2   |                                  |
//	+------------------------+-------+----------------------------------+
//
// The boolean collisions are documented behavior, not a defect: a function
// returning ResultFalse cannot be told apart from one returning
// ResultSuccess by value alone. Never combine boolean results with status or
// success results, and document every boolean-returning function's possible
// returns (the BoolResult alias exists to flag them).
//
// IsError accepts any negative value, so projects may define their own error
// results below the built-ins; IsLurkError answers the narrower question of
// membership in this package's own set.
//
// # Reporting
//
// Log and Err format a message, hand it to the active handler, and return
// their result unchanged, which makes "log and propagate" a single
// expression:
//
//	if lurk.IsError(result) {
//	    return lurk.PassError(result)
//	}
//
// With no configuration installed the default reporters write one line per
// call, log to stdout and err to stderr, timestamped with the wall-clock UTC
// time:
//
//	14:03:59  00000001  [lurk]  queue [jobs] empty
//	14:03:59  ffffffff  [lurk:Dequeue.87]  Bad parameter [q]. Must not be [nil]
//
// # Configuration
//
// SetConfig installs a process-wide override; nil reverts to the defaults.
// Fields left unset fall back to the defaults per field, so an override can
// change just the tag:
//
//	lurk.SetConfig(&lurk.Config{Projname: "myproj"})
//
// or reroute output entirely by installing handlers (see the zaplurk and
// sloglurk subpackages for framework-backed ones):
//
//	cfg := lurk.Config{LogFn: func(r lurk.Result, msg string) { ... }}
//	lurk.SetConfig(&cfg)
//
// The configuration is process-wide mutable state with no synchronization.
// Concurrent SetConfig racing with Log/Err is last-writer-wins with no
// atomicity across the record; callers needing cross-goroutine guarantees
// must synchronize externally.
//
// If a default reporter cannot write to its stream it panics rather than
// silently dropping diagnostics; recover if the program must outlive a dead
// stream.
package lurk
