package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
)

type fakeTx struct {
	execErr   error
	commitErr error

	execStmts  []string
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	t.execStmts = append(t.execStmts, query)
	return nil, t.execErr
}

func (t *fakeTx) Commit() error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs     []*fakeTx
	started int
	gotOpts *sql.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.gotOpts = opts
	tx := b.txs[b.started]
	b.started++
	return tx, nil
}

func pqError(code string) *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(code)}
}

func TestDoSerializable_Commits(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	m := NewTransactionManager(beginner)

	var sawTxCtx bool
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTxCtx = dbmetrics.IsInTransaction(ctx)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, sawTxCtx)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, beginner.gotOpts.Isolation)

	require.NotEmpty(t, tx.execStmts)
	assert.Contains(t, tx.execStmts[0], "SET LOCAL lock_timeout")
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	m := NewTransactionManager(beginner)

	boom := errors.New("no vacancy")
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Equal(t, 1, beginner.started)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	failing := &fakeTx{}
	succeeding := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{failing, succeeding}}
	m := NewTransactionManager(beginner, WithMaxRetries(3))

	calls := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		if calls == 1 {
			return pqError("40001")
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.True(t, failing.rolledBack)
	assert.True(t, succeeding.committed)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	failing := &fakeTx{commitErr: pqError("40001")}
	succeeding := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{failing, succeeding}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.True(t, succeeding.committed)
}

func TestDoSerializable_ExhaustedRetries(t *testing.T) {
	txs := []*fakeTx{{}, {}, {}}
	beginner := &fakeBeginner{txs: txs}
	m := NewTransactionManager(beginner, WithMaxRetries(2))

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return pqError("40001")
	})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 3, beginner.started)
}

func TestDoSerializable_LockTimeoutNotRetried(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return pqError("55P03")
	})

	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.Equal(t, 1, beginner.started)
	assert.True(t, tx.rolledBack)
}

func TestDoSerializable_CancelledContextAborts(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{txs: []*fakeTx{tx}}
	m := NewTransactionManager(beginner)

	ctx, cancel := context.WithCancel(context.Background())

	err := m.DoSerializable(ctx, func(context.Context) error {
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
