package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pawhaven/PH-BoardingService/pkg/metrics"
)

// defaultPoolStatsInterval how often connection pool gauges are refreshed
const defaultPoolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and reports query durations and pool statistics to the
// metrics collector. It satisfies DBExecutor, so repositories accept either
// a bare *sql.DB or a wrapped one.
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

// Wrap wraps the database with query metrics collection
func Wrap(db *sql.DB, collector *metrics.Metrics) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault wraps the database and starts a background goroutine
// publishing connection pool gauges until stopCh is closed.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(defaultPoolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.DBPoolOpenConnections.Set(float64(stats.OpenConnections))
			d.collector.DBPoolInUse.Set(float64(stats.InUse))
			d.collector.DBPoolIdle.Set(float64(stats.Idle))
			d.collector.DBPoolWaitCount.Set(float64(stats.WaitCount))
		}
	}
}

// QueryRowContext executes a single-row query, recording its duration
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

// QueryContext executes a multi-row query, recording its duration
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

// ExecContext executes a statement, recording its duration
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return result, err
}

// BeginTx starts a transaction whose statements are also measured
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, collector: d.collector}, nil
}

// measuredTx a transaction whose statements report durations
type measuredTx struct {
	tx        *sql.Tx
	collector *metrics.Metrics
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return result, err
}

func (t *measuredTx) Commit() error {
	return t.tx.Commit()
}

func (t *measuredTx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation extracts the leading SQL verb for the operation label
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
