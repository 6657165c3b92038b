package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
	committed bool
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { return nil }

type fakeDB struct{}

func (fakeDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}

	t.Run("without transaction returns db", func(t *testing.T) {
		assert.Equal(t, DBExecutor(db), GetExecutor(context.Background(), db))
		assert.False(t, IsInTransaction(context.Background()))
	})

	t.Run("with transaction returns tx", func(t *testing.T) {
		tx := &fakeTx{}
		ctx := WithTx(context.Background(), tx)
		assert.Same(t, tx, GetExecutor(ctx, db))
		assert.True(t, IsInTransaction(ctx))
	})
}

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("SELECT id FROM order_drafts"))
	assert.Equal(t, "insert", operationName("  INSERT INTO order_drafts"))
	assert.Equal(t, "unknown", operationName(""))
}

func TestCanLockRows(t *testing.T) {
	ctx := WithTx(context.Background(), &fakeTx{})
	assert.True(t, CanLockRows(ctx))

	readOnly := WithReadOnly(ctx)
	assert.True(t, IsReadOnly(readOnly))
	assert.False(t, CanLockRows(readOnly))

	assert.False(t, CanLockRows(context.Background()))
}
