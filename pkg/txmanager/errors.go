package txmanager

import "errors"

var (
	// ErrLockTimeout returned when a row lock could not be acquired within the
	// configured lock_timeout. Safe for the caller to retry with backoff.
	ErrLockTimeout = errors.New("txmanager: lock acquisition timed out")

	// ErrSerialization returned when the transaction kept failing with
	// serialization conflicts after all retries were spent
	ErrSerialization = errors.New("txmanager: serialization conflict, retries exhausted")

	// ErrBeginTx returned when a transaction could not be started
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx returned when a transaction could not be committed
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)
