package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
	"github.com/pawhaven/PH-BoardingService/pkg/txmanager"
)

// TransactionManager serializable transaction manager over a plain *sql.DB,
// used when metrics collection is disabled. Delegates to pkg/txmanager, so
// retry and timeout semantics are identical.
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

// sqlBeginner adapts *sql.DB to the txmanager.TxBeginner interface
// (*sql.Tx already satisfies dbmetrics.TxExecutor)
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager creates a transaction manager over a bare *sql.DB
func NewTransactionManager(db *sql.DB, opts ...txmanager.Option) *TransactionManager {
	return &TransactionManager{
		inner: txmanager.NewTransactionManager(sqlBeginner{db: db}, opts...),
	}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}
