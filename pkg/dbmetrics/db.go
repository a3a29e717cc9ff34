package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

const defaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, которая пишет длительность запросов в prometheus
// metrics может быть nil - тогда обёртка просто проксирует вызовы
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение без сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go wrapped.collectPoolStats(dbName, defaultStatsInterval, stopCh)
	}
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start), row.Err())
	return row
}

// BeginTx начинает транзакцию с теми же метриками
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			d.metrics.DBInUseConnections.WithLabelValues(dbName).Set(float64(stats.InUse))
			d.metrics.DBIdleConnections.WithLabelValues(dbName).Set(float64(stats.Idle))
			d.metrics.DBWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start), err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start), err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start), row.Err())
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
