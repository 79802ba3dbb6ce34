// report.go — dispatch entry points and the default reporters.
//
// Line format (fixed; only projname/prefix/postfix are configurable):
//
//	log:  HH:MM:SS  <8-hex result>  [<projname>]  <prefix><msg><postfix>
//	err:  HH:MM:SS  <8-hex result>  [<projname>:<caller>.<loc>]  <prefix><msg><postfix>
//
// Timestamps are UTC. The hex field is the two's-complement 32-bit value, so
// errors render as large hex numbers (ResultBadParam → ffffffff).
//
// Both entry points return their result argument unchanged so they can be the
// expression in an early-return statement:
//
//	return lurk.Log(lurk.ResultFailure, "queue [%s] empty", name)
package lurk

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Reporter output streams. Tests swap these to capture the default reporters'
// output; everything else leaves them alone.
var (
	logWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
)

// Placeholders the default error reporter substitutes for absent call-site
// information.
const (
	unknownCaller = "(unknown)"
	unknownLoc    = "???"
)

// Log reports result on the log channel. An empty format is a deliberate
// no-op escape hatch: nothing is emitted and result is returned as-is. With
// the channel disabled nothing is emitted either. Otherwise the message is
// formatted once and handed to the configured LogHandler, or to the default
// log reporter when none is configured.
//
// Always returns result unchanged, regardless of what the handler does.
func Log(result Result, format string, args ...any) Result {
	if format == "" {
		return result
	}
	if !configDoLog() {
		return result
	}

	configLogFn()(result, fmt.Sprintf(format, args...))

	return result
}

// Err reports result on the error channel, carrying the calling function's
// name and a location within it (both may be empty; the default reporter
// substitutes placeholders). The contract is otherwise identical to Log:
// empty format and disabled channel are silent, and result always comes back
// unchanged.
func Err(result Result, caller, loc, format string, args ...any) Result {
	if format == "" {
		return result
	}
	if !configDoErr() {
		return result
	}

	configErrFn()(result, caller, loc, fmt.Sprintf(format, args...))

	return result
}

// logDefault is the built-in LogHandler. It writes one formatted line to the
// log stream, or nothing when the log channel is disabled.
func logDefault(result Result, msg string) {
	if !configDoLog() {
		return
	}

	t := time.Now().UTC()

	_, err := fmt.Fprintf(logWriter, "%02d:%02d:%02d  %08x  [%s]  %s%s%s",
		t.Hour(), t.Minute(), t.Second(), uint32(result),
		configProjname(), configPrefix(), msg, configPostfix())
	// A log stream that cannot be written to would mask the very diagnostics
	// being sought; treat it as unrecoverable rather than continue silently.
	// The panic can be intercepted with recover if a program must survive it.
	if err != nil {
		panic(fmt.Sprintf("lurk: cannot write to log stream: %v", err))
	}
}

// errDefault is the built-in ErrHandler. It writes one formatted line to the
// error stream, substituting placeholders for absent caller/loc, or nothing
// when the error channel is disabled.
func errDefault(result Result, caller, loc, msg string) {
	if !configDoErr() {
		return
	}

	if caller == "" {
		caller = unknownCaller
	}
	if loc == "" {
		loc = unknownLoc
	}

	t := time.Now().UTC()

	_, err := fmt.Fprintf(errWriter, "%02d:%02d:%02d  %08x  [%s:%s.%s]  %s%s%s",
		t.Hour(), t.Minute(), t.Second(), uint32(result),
		configProjname(), caller, loc, configPrefix(), msg, configPostfix())
	if err != nil {
		panic(fmt.Sprintf("lurk: cannot write to error stream: %v", err))
	}
}
