package result

import "fmt"

// FailureProjection is a failure-biased view over a Result: its combinators
// act on the failure value and leave a success untouched, mirroring how the
// success-biased set leaves a failure untouched.
type FailureProjection[S, F any] struct {
	result Result[S, F]
}

// Result returns the underlying result.
func (p FailureProjection[S, F]) Result() Result[S, F] {
	return p.result
}

func (p FailureProjection[S, F]) IsSuccess() bool {
	return p.result.IsSuccess()
}

func (p FailureProjection[S, F]) IsFailure() bool {
	return p.result.IsFailure()
}

// Foreach invokes effect on the failure value only. Panics propagate.
func (p FailureProjection[S, F]) Foreach(effect func(e F)) {
	if p.result.IsFailure() {
		effect(p.result.Err())
	}
}

func (p FailureProjection[S, F]) GetOrElse(def func() F) F {
	if p.result.IsFailure() {
		return p.result.Err()
	}
	return def()
}

func (p FailureProjection[S, F]) OrElse(alt func() Result[S, F]) Result[S, F] {
	if p.result.IsFailure() {
		return p.result
	}
	return alt()
}

func (p FailureProjection[S, F]) Contains(x F) bool {
	return p.result.IsFailure() && deepEqual(p.result.Err(), x)
}

func (p FailureProjection[S, F]) Forall(pred func(e F) bool) bool {
	if p.result.IsSuccess() {
		return true
	}
	return pred(p.result.Err())
}

func (p FailureProjection[S, F]) Exists(pred func(e F) bool) bool {
	return p.result.IsFailure() && pred(p.result.Err())
}

// ToValue reports the failure value, absent on Success or when the held error
// is nil-equivalent.
func (p FailureProjection[S, F]) ToValue() (F, bool) {
	var zero F
	if p.result.IsSuccess() || IsNil(p.result.Err()) {
		return zero, false
	}
	return p.result.Err(), true
}

// Unpack mirrors Result.Unpack with the variants swapped: the failure value is
// the carried value, a success becomes a synthetic error.
func (p FailureProjection[S, F]) Unpack() (F, error) {
	if p.result.IsFailure() {
		return p.result.Err(), nil
	}
	var zero F
	return zero, fmt.Errorf("%v", p.result.Result())
}

// MapFailure transforms the error side; a success passes through retyped with
// its metadata kept (an attached producer is dropped, its type changed).
func MapFailure[S, F, F1 any](p FailureProjection[S, F], fn func(e F) F1) Result[S, F1] {
	if p.result.IsSuccess() {
		return successFrom[S, F, F1](p.result)
	}

	mapped := Fail[S](fn(p.result.Err()))
	mapped.createdAt = p.result.createdAt
	mapped.id = p.result.id
	return mapped
}

// FlatMapFailure feeds the failure value to fn and returns its result
// unchanged; a success passes through retyped.
func FlatMapFailure[S, F, F1 any](p FailureProjection[S, F], fn func(e F) Result[S, F1]) Result[S, F1] {
	if p.result.IsSuccess() {
		return successFrom[S, F, F1](p.result)
	}
	return fn(p.result.Err())
}
