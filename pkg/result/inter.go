package result

import "time"

type ValueProvider[S any] interface {
	// Result returns the successful result value
	Result() S
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that hold either a value or a
// typed failure
type WithFailure[S, F any] interface {
	ValueProvider[S]
	// Err returns the failure value if the operation failed
	Err() F
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
