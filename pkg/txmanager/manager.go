package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
)

const (
	defaultMaxRetries  = 3
	defaultLockTimeout = 3 * time.Second

	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

// TxBeginner anything that can start a transaction: *dbmetrics.DB or the
// *sql.DB adapter in pkg/simpletxmanager
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs functions inside serializable transactions with a
// bounded lock wait and automatic retry of serialization conflicts.
//
// The executor of the open transaction is placed into the context, so any
// repository call made through the callback runs on the same transaction.
type TransactionManager struct {
	db          TxBeginner
	maxRetries  int
	lockTimeout time.Duration
}

// Option configures the transaction manager
type Option func(*TransactionManager)

// WithMaxRetries sets how many times a serialization conflict is retried
func WithMaxRetries(n int) Option {
	return func(m *TransactionManager) {
		if n > 0 {
			m.maxRetries = n
		}
	}
}

// WithLockTimeout bounds how long a statement may wait on a row lock before
// the transaction fails with ErrLockTimeout
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewTransactionManager creates a transaction manager over the given database
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:          db,
		maxRetries:  defaultMaxRetries,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DoSerializable executes fn inside a SERIALIZABLE transaction.
//
// Serialization conflicts (40001) and deadlocks (40P01) roll back and retry
// up to maxRetries times with a small linear backoff. Lock waits longer than
// lockTimeout fail the attempt with ErrLockTimeout without retrying here;
// bounding worst-case latency is the caller's contract, retrying is the
// caller's decision. A cancelled context aborts the transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrLockTimeout) {
			return err
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: last error: %v", ErrSerialization, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	// lock_timeout is transaction-local, it resets on commit/rollback
	lockTimeoutMs := m.lockTimeout.Milliseconds()
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeoutMs)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: set lock_timeout: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return classify(err)
	}

	if ctx.Err() != nil {
		_ = tx.Rollback()
		return ctx.Err()
	}

	// Serializable transactions often fail at COMMIT, so the pq error must
	// stay in the chain for classification.
	if err := tx.Commit(); err != nil {
		return classify(fmt.Errorf("%w: %w", ErrCommitTx, err))
	}

	return nil
}

// classify maps postgres error codes onto the package sentinels so callers
// can match with errors.Is without importing lib/pq
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqLockNotAvailable:
			return fmt.Errorf("%w: %v", ErrLockTimeout, err)
		case pqSerializationFailure, pqDeadlockDetected:
			return fmt.Errorf("%w: %v", ErrSerialization, err)
		}
	}
	return err
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrSerialization)
}
