// callsite.go — call-site helpers that report and return in one expression.
//
// The helpers capture the calling function's name and line via runtime.Caller
// and forward them to Err, so call sites get located diagnostics without
// spelling out where they are. Each helper returns its result so it can sit
// directly in a return statement:
//
//	if q.head == nil {
//	    return lurk.BadParamNil("q.head")
//	}
//	if lurk.IsError(result) {
//	    return lurk.PassError(result)
//	}
package lurk

import (
	"runtime"
	"strconv"
	"strings"
)

// callsite returns the short function name and line number of the helper's
// caller's caller. Unresolvable frames yield empty strings, which the default
// error reporter renders as its placeholders.
func callsite() (caller, loc string) {
	pc, _, line, ok := runtime.Caller(2)
	if !ok {
		return "", ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", strconv.Itoa(line)
	}
	name := fn.Name()
	// runtime gives fully-qualified names (pkg/path.Func, pkg/path.(*T).m);
	// keep only the part after the package path, matching __func__.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, strconv.Itoa(line)
}

// PassError reports result on the error channel with a fixed callback-trace
// message and returns it, for propagating an error already reported at its
// origin while leaving a trail through the call stack.
func PassError(result Result) Result {
	caller, loc := callsite()
	return Err(result, caller, loc, "Callback trace.")
}

// BadParam reports and returns ResultBadParam naming the offending parameter.
func BadParam(param string) Result {
	caller, loc := callsite()
	return Err(ResultBadParam, caller, loc, "Bad parameter [%s].", param)
}

// BadParamNil is BadParam for parameters that must not be nil.
func BadParamNil(param string) Result {
	caller, loc := callsite()
	return Err(ResultBadParam, caller, loc,
		"Bad parameter [%s]. Must not be [nil]", param)
}

// InvalidObject reports and returns ResultInvalidObject naming the object.
func InvalidObject(obj string) Result {
	caller, loc := callsite()
	return Err(ResultInvalidObject, caller, loc, "Invalid object [%s].", obj)
}

// InvalidObjectMember reports and returns ResultInvalidObject naming the
// object member that failed validation.
func InvalidObjectMember(obj, member string) Result {
	caller, loc := callsite()
	return Err(ResultInvalidObject, caller, loc,
		"Invalid object member [%s.%s].", obj, member)
}

// InternalError reports and returns ResultInternalError with a fixed message.
func InternalError() Result {
	caller, loc := callsite()
	return Err(ResultInternalError, caller, loc, "Internal error.")
}

// Errorf reports and returns an arbitrary result with a formatted message,
// capturing the call site like the other helpers.
func Errorf(result Result, format string, args ...any) Result {
	caller, loc := callsite()
	return Err(result, caller, loc, format, args...)
}
