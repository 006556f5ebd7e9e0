package reservation

import (
	"context"
	"database/sql"

	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository runs over a bare *sql.DB
// or the metric-collecting wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
