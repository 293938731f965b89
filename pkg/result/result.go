package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Producer converts a captured panic into a typed failure value. A Success
// constructed with a producer keeps downstream safe combinators armed without
// re-specifying it on every call.
type Producer[F any] func(err error) F

type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	err       F
	isSuccess bool
	produce   Producer[F]
}

func Success[S, F any](v S) Result[S, F] {
	return Result[S, F]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessWith attaches a failure producer, arming the safety chain for every
// derived result until Swap or a projection retype drops it.
func SuccessWith[S, F any](v S, produce Producer[F]) Result[S, F] {
	return Result[S, F]{
		value:     v,
		isSuccess: true,
		produce:   produce,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[S, F any](e F) Result[S, F] {
	return Result[S, F]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg is sugar for Fail(ErrorDetailWith(msg)).
func FailMsg[S any](msg string) StringResult[S] {
	return Fail[S](ErrorDetailWith(msg))
}

// FailFrom retypes a failed result, keeping its error, id and creation time.
func FailFrom[In, Out, F any](from Result[In, F]) Result[Out, F] {
	return Result[Out, F]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom retypes a successful result's failure side. The old producer is
// typed for the old failure parameter, so the chain is broken here.
func successFrom[S, FIn, FOut any](from Result[S, FIn]) Result[S, FOut] {
	return Result[S, FOut]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[S, F]) Result() S {
	return r.value
}

func (r Result[S, F]) Err() F {
	return r.err
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[S, F]) HasProducer() bool {
	return r.produce != nil
}

func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[S, F]) Id() uuid.UUID {
	return r.id
}

// Equal compares by variant and held value/error only. Id, creation time and
// an attached producer never participate.
func (r Result[S, F]) Equal(other Result[S, F]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return deepEqual(r.value, other.value)
	}
	return deepEqual(r.err, other.err)
}

// Foreach invokes effect on the success value only. Panics propagate.
func (r Result[S, F]) Foreach(effect func(v S)) {
	if r.isSuccess {
		effect(r.value)
	}
}

// ForeachSafe is the recovering counterpart of Foreach. Producer resolution:
// the argument, else the instance's own, else the call degrades to Foreach.
func (r Result[S, F]) ForeachSafe(effect func(v S), produce Producer[F]) Result[S, F] {
	if produce == nil {
		produce = r.produce
	}
	if produce == nil {
		r.Foreach(effect)
		return r
	}

	if err := capture(func() { r.Foreach(effect) }); err != nil {
		return Fail[S](produce(err))
	}
	return r
}

func (r Result[S, F]) GetOrElse(def func() S) S {
	if r.isSuccess {
		return r.value
	}
	return def()
}

func (r Result[S, F]) OrElse(alt func() Result[S, F]) Result[S, F] {
	if r.isSuccess {
		return r
	}
	return alt()
}

func (r Result[S, F]) Contains(x S) bool {
	return r.isSuccess && deepEqual(r.value, x)
}

func (r Result[S, F]) Forall(pred func(v S) bool) bool {
	if !r.isSuccess {
		return true
	}
	return pred(r.value)
}

func (r Result[S, F]) Exists(pred func(v S) bool) bool {
	return r.isSuccess && pred(r.value)
}

// Swap flips the variants. The resulting Success carries no producer; use
// SwapWith to re-arm the chain with a producer typed for the new failure side.
func (r Result[S, F]) Swap() Result[F, S] {
	if r.isSuccess {
		return Result[F, S]{
			err:       r.value,
			isSuccess: false,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Result[F, S]{
		value:     r.err,
		isSuccess: true,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

func (r Result[S, F]) SwapWith(produce Producer[S]) Result[F, S] {
	swapped := r.Swap()
	if swapped.isSuccess {
		swapped.produce = produce
	}
	return swapped
}

// ToValue reports the success value, absent on Failure or when the held value
// is nil-equivalent.
func (r Result[S, F]) ToValue() (S, bool) {
	var zero S
	if !r.isSuccess || IsNil(r.value) {
		return zero, false
	}
	return r.value, true
}

// Unpack collapses to the conventional Go pair. The failure side becomes a
// synthetic error built from its string form.
func (r Result[S, F]) Unpack() (S, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero S
	return zero, fmt.Errorf("%v", r.err)
}

func (r Result[S, F]) Projection() FailureProjection[S, F] {
	return FailureProjection[S, F]{result: r}
}
