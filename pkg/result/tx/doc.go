// Package tx centralizes the commit-xor-rollback invariant for results that
// carry a transaction handle.
//
// Transaction runs a bounded operation against a successful handle and then
// commits or rolls back from the operation's outcome. Rollback is always
// attempted when anything in the body panics, and the underlying error detail
// is surfaced rather than swallowed.
package tx
