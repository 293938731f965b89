// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of StringResult[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/To: compose result-returning functions, To switching the value type
// - Map/MapSafe: transform the value, MapSafe recovering panics into failures
// - Validate/Annotate: check values and enrich failure detail
// - Ensure: trigger side effects without changing the result
// - GetOrElse/Finally: reduce to a concrete value
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package chain
