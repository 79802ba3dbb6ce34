// result_test.go — verification of the taxonomy and classification predicates.
package lurk

import (
	"math"
	"testing"
)

func TestIsError_NegativeRange(t *testing.T) {
	t.Parallel()

	for _, r := range []Result{-1, -2, -3, -4, -100, math.MinInt32} {
		if !IsError(r) {
			t.Fatalf("IsError(%d) = false, want true", r)
		}
	}
}

func TestIsError_NonNegativeRange(t *testing.T) {
	t.Parallel()

	for _, r := range []Result{0, 1, 2, 3, 100, math.MaxInt32} {
		if IsError(r) {
			t.Fatalf("IsError(%d) = true, want false", r)
		}
	}
}

func TestIsLurkError_Members(t *testing.T) {
	t.Parallel()

	for _, r := range []Result{ResultInvalidObject, ResultInternalError, ResultBadParam} {
		if !IsLurkError(r) {
			t.Fatalf("IsLurkError(%d) = false, want true", r)
		}
	}
}

func TestIsLurkError_NonMembers(t *testing.T) {
	t.Parallel()

	// Includes negatives that IsError accepts but the named set does not.
	for _, r := range []Result{-4, -100, math.MinInt32, ResultSuccess, ResultFailure, ResultDone} {
		if IsLurkError(r) {
			t.Fatalf("IsLurkError(%d) = true, want false", r)
		}
	}
}

func TestIsSuccess_ZeroOnly(t *testing.T) {
	t.Parallel()

	if !IsSuccess(ResultSuccess) {
		t.Fatalf("IsSuccess(ResultSuccess) = false, want true")
	}
	if !IsValidObject(ResultValidObject) {
		t.Fatalf("IsValidObject(ResultValidObject) = false, want true")
	}
	for _, r := range []Result{-1, 1, 2, math.MinInt32, math.MaxInt32} {
		if IsSuccess(r) {
			t.Fatalf("IsSuccess(%d) = true, want false", r)
		}
		if IsValidObject(r) {
			t.Fatalf("IsValidObject(%d) = true, want false", r)
		}
	}
}

func TestIsSuccess_IsValidObject_SameTruthTable(t *testing.T) {
	t.Parallel()

	for r := Result(-5); r <= 5; r++ {
		if IsSuccess(r) != IsValidObject(r) {
			t.Fatalf("IsSuccess(%d) != IsValidObject(%d)", r, r)
		}
	}
}

func TestBooleans_ExactEncodings(t *testing.T) {
	t.Parallel()

	if !IsTrue(ResultTrue) || IsFalse(ResultTrue) {
		t.Fatalf("ResultTrue misclassified: IsTrue=%v IsFalse=%v",
			IsTrue(ResultTrue), IsFalse(ResultTrue))
	}
	if !IsFalse(ResultFalse) || IsTrue(ResultFalse) {
		t.Fatalf("ResultFalse misclassified: IsTrue=%v IsFalse=%v",
			IsTrue(ResultFalse), IsFalse(ResultFalse))
	}
	for _, r := range []Result{-1, 2, 3, math.MinInt32, math.MaxInt32} {
		if IsTrue(r) || IsFalse(r) {
			t.Fatalf("boolean predicate accepted %d", r)
		}
	}
}

func TestBooleans_DocumentedCollisions(t *testing.T) {
	t.Parallel()

	// The collisions are load-bearing documented behavior; pin them so a
	// renumbering cannot slip in silently.
	if ResultFalse != ResultSuccess {
		t.Fatalf("ResultFalse = %d, want %d", ResultFalse, ResultSuccess)
	}
	if ResultFalse != ResultValidObject {
		t.Fatalf("ResultFalse = %d, want %d", ResultFalse, ResultValidObject)
	}
	if ResultTrue != ResultFailure {
		t.Fatalf("ResultTrue = %d, want %d", ResultTrue, ResultFailure)
	}
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    Result
		want string
	}{
		{ResultInternalError, "internal_error"},
		{ResultInvalidObject, "invalid_object"},
		{ResultBadParam, "bad_param"},
		{ResultSuccess, "success"},
		{ResultFailure, "failure"},
		{ResultDone, "done"},
		{Result(-42), "error(-42)"},
		{Result(42), "status(42)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Fatalf("Result(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
