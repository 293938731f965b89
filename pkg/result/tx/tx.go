package tx

import (
	"fmt"

	"github.com/ib-77/biased/pkg/result"
)

// Transaction sequences a bounded operation with commit or rollback over an
// already-acquired handle.
//
// A failed handle is returned retyped and nothing runs. Otherwise boundedOp
// executes; when isTransactional rejects the handle its result is returned
// as-is, no commit or rollback attempted. For a transactional handle a
// successful bounded result is committed and a failed one rolled back, and in
// both cases the bounded result itself is returned: commit/rollback report
// through their own results only when they fail.
//
// Any panic out of the bounded operation, commit or rollback triggers a
// recovery rollback. See recoverTx for how the resulting failure is composed.
func Transaction[S, S1 any](
	handle result.StringResult[S],
	isTransactional func(h S) bool,
	boundedOp func() result.StringResult[S1],
	commit func(h S) result.StringResult[bool],
	rollback func(h S) result.StringResult[bool],
) (out result.StringResult[S1]) {

	if handle.IsFailure() {
		return result.FailFrom[S, S1](handle)
	}

	h := handle.Result()
	var bounded result.StringResult[S1]

	defer func() {
		if rec := recover(); rec != nil {
			out = recoverTx(h, asError(rec), bounded, rollback)
		}
	}()

	bounded = boundedOp()

	if !isTransactional(h) {
		return bounded
	}

	if bounded.IsSuccess() {
		if done := commit(h); done.IsFailure() {
			return result.Fail[S1](done.Err())
		}
		return bounded
	}

	if done := rollback(h); done.IsFailure() {
		combined := bounded.Err()
		for _, e := range done.Err() {
			combined = combined.Add(e.Category, e.Message)
		}
		return result.Fail[S1](combined)
	}
	return bounded
}

// recoverTx attempts a rollback after a panic anywhere in the transaction
// body. When the rollback call returns, the panic message leads the returned
// detail, followed by whatever entries the bounded result had already
// collected. When the rollback itself panics, a single entry names the
// recovery attempt, the path that was underway and the second panic.
func recoverTx[S, S1 any](h S, cause error, bounded result.StringResult[S1],
	rollback func(h S) result.StringResult[bool]) result.StringResult[S1] {

	path := "rollback"
	if bounded.IsSuccess() {
		path = "commit"
	}

	if rbErr := tryRollback(h, rollback); rbErr != nil {
		return result.FailMsg[S1](fmt.Sprintf(
			"exception during transaction recovery: %s path failed, rollback raised: %v", path, rbErr))
	}

	detail := result.ErrorDetailWith(cause.Error())
	if bounded.IsFailure() {
		for _, e := range bounded.Err() {
			detail = detail.Add(e.Category, e.Message)
		}
	}
	return result.Fail[S1](detail)
}

func tryRollback[S any](h S, rollback func(h S) result.StringResult[bool]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = asError(rec)
		}
	}()

	rollback(h)
	return nil
}

func asError(rec any) error {
	if e, ok := rec.(error); ok {
		return e
	}
	return fmt.Errorf("%v", rec)
}
