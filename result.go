// result.go — the result taxonomy and classification predicates for lurk.
//
// Intent:
//   - Provide a single small integer type that can carry an error, a success,
//     a status, or a boolean outcome.
//   - Keep the partition rules simple enough to reason about at a glance:
//     errors are strictly negative, success is exactly zero, statuses are
//     strictly positive.
//   - Allow projects to mint their own negative results without a central
//     registry; IsError accepts any negative value, IsLurkError only the
//     built-ins.
//
// Conventions (documented, not enforced here):
//   - A *failure* is not an *error*. Errors signal unexpected behavior or
//     invalid values; Failure reports an unexceptional "no" (an empty queue,
//     a miss).
//   - Boolean results must never be mixed with status or success results.
//     ResultFalse and ResultSuccess share the value 0, ResultTrue and
//     ResultFailure share the value 1. Functions returning booleans should
//     declare it (use BoolResult) and document their possible returns.
package lurk

import "strconv"

// Result is a classification value: an error (< 0), a success (== 0), a
// status (> 0), or a boolean outcome. It is 32 bits wide so that the logged
// hex rendering is always exactly eight digits.
type Result int32

// BoolResult is an alias for Result used to self-document functions whose
// result is a boolean outcome (ResultTrue/ResultFalse, possibly an error)
// rather than a success/status.
type BoolResult = Result

// Errors (strictly negative)
const (
	// ResultInternalError signals a bug or unexpected behavior inside the
	// reporting program itself.
	ResultInternalError Result = -3

	// ResultInvalidObject signals that an object (typically a struct) was
	// found to be invalid.
	ResultInvalidObject Result = -2

	// ResultBadParam signals that a parameter passed by a caller is invalid
	// in some way.
	ResultBadParam Result = -1
)

// Success and statuses (zero and strictly positive)
const (
	// ResultSuccess indicates successful execution; the caller can move on
	// with confidence.
	ResultSuccess Result = 0

	// ResultFailure reports a failure that is not an error, e.g. dequeueing
	// from an empty queue.
	ResultFailure Result = 1

	// ResultDone indicates an iterator or ongoing process has finished.
	ResultDone Result = 2

	// ResultValidObject is equivalent to ResultSuccess and is typically used
	// alongside ResultInvalidObject when verifying object validity.
	ResultValidObject Result = ResultSuccess
)

// Booleans. These alias the numeric encodings of true and false, so they
// collide with ResultFailure and ResultSuccess respectively. The collision is
// deliberate and hazardous: never compare a boolean result against a
// status/success result.
const (
	ResultTrue  Result = 1
	ResultFalse Result = 0
)

// lurkErrorSet provides O(1) membership checks for the built-in errors.
// IsError is the broader sign-based predicate; this set answers the narrower
// "is it one of ours" question.
var lurkErrorSet = map[Result]struct{}{
	ResultInternalError: {},
	ResultInvalidObject: {},
	ResultBadParam:      {},
}

// IsSuccess reports whether result is exactly ResultSuccess. Note that
// ResultFalse and ResultValidObject share the same value; there is no way to
// distinguish them here, so choose carefully which results to pass in.
func IsSuccess(result Result) bool {
	return result == ResultSuccess
}

// IsValidObject reports whether result is exactly ResultValidObject. The
// truth table is identical to IsSuccess; the name exists for call-site
// readability in object-validation code.
func IsValidObject(result Result) bool {
	return result == ResultValidObject
}

// IsError reports whether result is an error, i.e. strictly negative. This
// accepts any negative value, not just the built-in errors; see IsLurkError
// for exact membership.
func IsError(result Result) bool {
	return result < 0
}

// IsLurkError reports whether result is one of the errors this package
// defines. It is false for any other value, including negative values that
// IsError would accept.
func IsLurkError(result Result) bool {
	_, ok := lurkErrorSet[result]
	return ok
}

// IsTrue reports whether result is exactly ResultTrue.
func IsTrue(result Result) bool {
	return result == ResultTrue
}

// IsFalse reports whether result is exactly ResultFalse.
func IsFalse(result Result) bool {
	return result == ResultFalse
}

// String returns a stable, lowercase name for the built-in results and a
// numeric fallback for everything else. Values shared between a boolean and
// a status render as the status name (the booleans are aliases, not distinct
// values).
func (r Result) String() string {
	switch r {
	case ResultInternalError:
		return "internal_error"
	case ResultInvalidObject:
		return "invalid_object"
	case ResultBadParam:
		return "bad_param"
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultDone:
		return "done"
	}
	if r < 0 {
		return "error(" + strconv.Itoa(int(r)) + ")"
	}
	return "status(" + strconv.Itoa(int(r)) + ")"
}
