package chain

import (
	"github.com/ib-77/biased/pkg/result"
)

// Chain wraps a StringResult to enable fluent chaining
type Chain[T any] struct {
	res result.StringResult[T]
}

// Start creates a new chain from an existing result
func Start[T any](r result.StringResult[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](v T) Chain[T] {
	return Start(result.Success[T, result.ErrorDetail](v))
}

// Result returns the underlying result
func (c Chain[T]) Result() result.StringResult[T] {
	return c.res
}

// Then composes functions that already return a result
func (c Chain[T]) Then(onSuccess func(t T) result.StringResult[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Result())}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: result.Map(c.res, onSuccess)}
}

// MapSafe transforms under the recovery boundary, a panic becoming the failure
func (c Chain[T]) MapSafe(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: result.MapSafe(c.res, onSuccess, result.DetailProducer)}
}

// Validate fails the chain with errMsg when the check rejects the value
func (c Chain[T]) Validate(check func(t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{res: result.Validate(c.res, check)}
}

// Annotate appends a (category, message) pair to a failed chain's detail
func (c Chain[T]) Annotate(category, message string) Chain[T] {
	return Chain[T]{res: result.Annotate(c.res, category, message)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(t T), onFailure func(d result.ErrorDetail)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Result())
	}
	return c
}

// GetOrElse collapses the chain to the held value or a default
func (c Chain[T]) GetOrElse(def func() T) T {
	return c.res.GetOrElse(def)
}

// To switches the chain to a new value type via a result-returning function
func To[T, U any](c Chain[T], onSuccess func(t T) result.StringResult[U]) Chain[U] {
	return Chain[U]{res: result.FlatMap(c.res, onSuccess)}
}

// Finally collapses the chain to a final value via the matching handler
func Finally[T, U any](c Chain[T], onSuccess func(t T) U, onFailure func(d result.ErrorDetail) U) U {
	return result.Fold(c.res, onSuccess, onFailure)
}
