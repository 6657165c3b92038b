package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderIntakeService/pkg/metrics"
)

// DefaultCollectInterval период сбора статистики connection pool
const DefaultCollectInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обёрток над ними
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, которую можно зафиксировать или откатить
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, собирающая метрики запросов
// Если metrics == nil, работает как прозрачный прокси
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с интервалом DefaultCollectInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go wrapped.collectPoolStats(DefaultCollectInterval, stopCh)
	}
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, запросы внутри которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) observe(query string, start time.Time) {
	observe(d.metrics, query, start)
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBOpenConnections.Set(float64(stats.OpenConnections))
			d.metrics.DBInUseConnections.Set(float64(stats.InUse))
			d.metrics.DBIdleConnections.Set(float64(stats.Idle))
			d.metrics.DBWaitCount.Set(float64(stats.WaitCount))
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
	defer observe(t.metrics, query, time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer observe(t.metrics, query, time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer observe(t.metrics, query, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

type txKey struct{}

type readOnlyKey struct{}

// WithTx кладёт активную транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext достаёт транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// WithReadOnly помечает транзакцию в контексте как READ ONLY
func WithReadOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, readOnlyKey{}, true)
}

// IsReadOnly true, если транзакция в контексте открыта только для чтения
func IsReadOnly(ctx context.Context) bool {
	readOnly, _ := ctx.Value(readOnlyKey{}).(bool)
	return readOnly
}

// CanLockRows true внутри транзакции, где допустим SELECT ... FOR UPDATE
func CanLockRows(ctx context.Context) bool {
	return IsInTransaction(ctx) && !IsReadOnly(ctx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}

func observe(m *metrics.Metrics, query string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operationName(query)).Observe(time.Since(start).Seconds())
}

// operationName первое слово запроса (select, insert, ...)
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
