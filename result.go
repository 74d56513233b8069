package valgo

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Result is the outcome of a validation: either a value or a non-empty list
// of issues, never both and never neither. The zero Result is a failure with
// no issues recorded; validators always construct results through OK, Fail,
// or Failure.
type Result[T any] struct {
	value  T
	issues Issues
	ok     bool
}

// OK returns a successful result carrying v.
func OK[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Fail returns a failed result carrying the given issues.
func Fail[T any](iss ...Issue) Result[T] { return Result[T]{issues: iss} }

// Failure returns a failed result with a single issue and no path.
func Failure[T any](code, message string) Result[T] {
	return Result[T]{issues: Issues{{Code: code, Message: message}}}
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the result carries issues.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the validated value; ok is false for failures.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Issues returns the recorded issues (nil for successes).
func (r Result[T]) Issues() Issues {
	if r.ok {
		return nil
	}
	return r.issues
}

// Err returns the issues as an error, or nil for successes. This bridges the
// data-carrying result into Go's error plumbing at call sites that want it.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.issues
}

// WithPrefix re-roots every issue under seg, creating paths where absent.
// Successes pass through unchanged.
func (r Result[T]) WithPrefix(seg Seg) Result[T] {
	if r.ok {
		return r
	}
	iss := make(Issues, 0, len(r.issues))
	for _, it := range r.issues {
		it.Path = it.Path.Prepend(seg)
		iss = append(iss, it)
	}
	return Result[T]{issues: iss}
}

// MarshalJSON renders {"value": ...} on success and {"issues": [...]} on
// failure, the Standard Schema result shape.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(struct {
			Value T `json:"value"`
		}{Value: r.value})
	}
	return json.Marshal(struct {
		Issues Issues `json:"issues"`
	}{Issues: r.issues})
}

// UnmarshalJSON accepts the wire shape produced by MarshalJSON. Exactly one
// of "value"/"issues" must be present.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var probe struct {
		Value  *T     `json:"value"`
		Issues Issues `json:"issues"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	switch {
	case probe.Value != nil && probe.Issues == nil:
		*r = OK(*probe.Value)
		return nil
	case probe.Value == nil && probe.Issues != nil:
		*r = Fail[T](probe.Issues...)
		return nil
	default:
		return fmt.Errorf("valgo: result must carry exactly one of value/issues")
	}
}

// anyResult widens a typed result to Result[any], preserving issues.
func anyResult[T any](r Result[T]) Result[any] {
	if v, ok := r.Value(); ok {
		return OK[any](v)
	}
	return Fail[any](r.Issues()...)
}

// Itemize adapts a typed validator into an ItemValidator for ValidateArray.
func Itemize[T any](fn func(any) Result[T]) ItemValidator {
	return func(v any) Result[any] { return anyResult(fn(v)) }
}
