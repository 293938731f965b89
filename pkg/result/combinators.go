package result

// Fold collapses the result with the matching handler. Panics from either
// handler propagate to the caller.
func Fold[S, F, C any](r Result[S, F], onSuccess func(v S) C, onFailure func(e F) C) C {
	if r.IsSuccess() {
		return onSuccess(r.Result())
	}
	return onFailure(r.Err())
}

// FoldSafe folds inside a recovery boundary. Producer resolution: the produce
// argument, else the producer attached to r, else no boundary is requested and
// the call degrades to Success(Fold(...)) with panics propagating.
//
// On success the returned Success carries the resolved producer, so chained
// safe combinators stay armed.
func FoldSafe[S, F, C any](r Result[S, F], onSuccess func(v S) C, onFailure func(e F) C,
	produce Producer[F]) Result[C, F] {

	if produce == nil {
		produce = r.produce
	}
	if produce == nil {
		return Success[C, F](Fold(r, onSuccess, onFailure))
	}

	var folded C
	if err := capture(func() { folded = Fold(r, onSuccess, onFailure) }); err != nil {
		return Fail[C](produce(err))
	}
	return SuccessWith(folded, produce)
}

// Map transforms the success value; a failure passes through retyped with its
// metadata kept. Panics from fn propagate.
func Map[S, S1, F any](r Result[S, F], fn func(v S) S1) Result[S1, F] {
	if r.IsFailure() {
		return FailFrom[S, S1](r)
	}

	mapped := Result[S1, F]{
		value:     fn(r.value),
		isSuccess: true,
		produce:   r.produce,
		createdAt: r.createdAt,
		id:        r.id,
	}
	return mapped
}

// MapSafe is Map inside the recovery boundary, with FoldSafe's producer
// resolution and degrade rule.
func MapSafe[S, S1, F any](r Result[S, F], fn func(v S) S1, produce Producer[F]) Result[S1, F] {
	if produce == nil {
		produce = r.produce
	}
	if produce == nil {
		return Map(r, fn)
	}
	if r.IsFailure() {
		return FailFrom[S, S1](r)
	}

	var mapped S1
	if err := capture(func() { mapped = fn(r.value) }); err != nil {
		return Fail[S1](produce(err))
	}
	return SuccessWith(mapped, produce)
}

// FlatMap feeds the success value to fn and returns its result unchanged,
// flattening one level. A failure passes through retyped.
func FlatMap[S, S1, F any](r Result[S, F], fn func(v S) Result[S1, F]) Result[S1, F] {
	if r.IsFailure() {
		return FailFrom[S, S1](r)
	}
	return fn(r.value)
}

// FlatMapSafe is FlatMap inside the recovery boundary. A producer-less Success
// returned by fn is re-armed with the resolved producer so the chain survives
// the switch.
func FlatMapSafe[S, S1, F any](r Result[S, F], fn func(v S) Result[S1, F],
	produce Producer[F]) Result[S1, F] {

	if produce == nil {
		produce = r.produce
	}
	if produce == nil {
		return FlatMap(r, fn)
	}
	if r.IsFailure() {
		return FailFrom[S, S1](r)
	}

	var out Result[S1, F]
	if err := capture(func() { out = fn(r.value) }); err != nil {
		return Fail[S1](produce(err))
	}
	if out.isSuccess && out.produce == nil {
		out.produce = produce
	}
	return out
}

// Flatten unwraps one level of nesting. The nesting requirement is expressed
// in the signature, so a Success holding a non-result value cannot be passed.
func Flatten[S, F any](r Result[Result[S, F], F]) Result[S, F] {
	if r.IsFailure() {
		return FailFrom[Result[S, F], S](r)
	}
	return r.Result()
}
