package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

// fakeExecutor записывает запросы; поддерживает только ExecContext
type fakeExecutor struct {
	calls []execCall
	rows  []int64
	err   error
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	var rows int64 = 1
	if len(f.rows) > 0 {
		rows, f.rows = f.rows[0], f.rows[1:]
	}
	return fakeResult{rows: rows}, nil
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestRepository_AppendOperation(t *testing.T) {
	db := &fakeExecutor{}
	repo := NewRepository(db)
	draftID := uuid.New()
	op := domain.Operation{Kind: domain.OpChooseComplexity, ItemID: "clipping", TierID: "basic"}

	require.NoError(t, repo.AppendOperation(context.Background(), draftID, 3, op))
	require.Len(t, db.calls, 2)

	insert := db.calls[0]
	assert.Equal(t,
		"INSERT INTO order_draft_operations (draft_id,seq,kind,operation) VALUES ($1,$2,$3,$4)",
		insert.query)
	require.Len(t, insert.args, 4)
	assert.Equal(t, draftID, insert.args[0])
	assert.Equal(t, 3, insert.args[1])
	assert.Equal(t, "choose_complexity", insert.args[2])

	var stored domain.Operation
	require.NoError(t, json.Unmarshal(insert.args[3].([]byte), &stored))
	assert.Equal(t, op, stored)

	assert.Equal(t, "UPDATE order_drafts SET updated_at = NOW() WHERE id = $1", db.calls[1].query)
}

func TestRepository_AppendOperation_DraftGone(t *testing.T) {
	db := &fakeExecutor{rows: []int64{1, 0}}

	err := NewRepository(db).AppendOperation(context.Background(), uuid.New(), 0, domain.Operation{Kind: domain.OpToggleItem, ItemID: "x"})
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRepository_DeleteLastOperation(t *testing.T) {
	t.Run("removes newest entry", func(t *testing.T) {
		db := &fakeExecutor{}
		draftID := uuid.New()

		require.NoError(t, NewRepository(db).DeleteLastOperation(context.Background(), draftID))
		require.Len(t, db.calls, 2)
		assert.Equal(t,
			"DELETE FROM order_draft_operations WHERE draft_id = $1 AND seq = (SELECT MAX(seq) FROM order_draft_operations WHERE draft_id = $2)",
			db.calls[0].query)
		assert.Equal(t, []interface{}{draftID.String(), draftID.String()}, db.calls[0].args)
	})

	t.Run("empty log", func(t *testing.T) {
		db := &fakeExecutor{rows: []int64{0}}

		err := NewRepository(db).DeleteLastOperation(context.Background(), uuid.New())
		require.ErrorIs(t, err, ErrNoOperations)
		assert.Len(t, db.calls, 1)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db := &fakeExecutor{}
		require.NoError(t, NewRepository(db).Delete(context.Background(), uuid.New()))
		assert.Equal(t, "DELETE FROM order_drafts WHERE id = $1", db.calls[0].query)
	})

	t.Run("not found", func(t *testing.T) {
		db := &fakeExecutor{rows: []int64{0}}
		require.ErrorIs(t, NewRepository(db).Delete(context.Background(), uuid.New()), ErrDraftNotFound)
	})

	t.Run("exec failure", func(t *testing.T) {
		db := &fakeExecutor{err: errors.New("connection reset")}
		require.ErrorIs(t, NewRepository(db).Delete(context.Background(), uuid.New()), ErrExecQuery)
	})
}

func TestRepository_DeleteStale(t *testing.T) {
	db := &fakeExecutor{rows: []int64{4}}
	before := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	deleted, err := NewRepository(db).DeleteStale(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Equal(t, "DELETE FROM order_drafts WHERE updated_at < $1", db.calls[0].query)
	assert.Equal(t, []interface{}{before}, db.calls[0].args)
}

func TestRepository_SetStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db := &fakeExecutor{}
		draftID := uuid.New()

		require.NoError(t, NewRepository(db).SetStatus(context.Background(), draftID, domain.DraftStatusSubmitting))
		require.Len(t, db.calls, 1)
		assert.Equal(t, "UPDATE order_drafts SET status = $1, updated_at = NOW() WHERE id = $2", db.calls[0].query)
		assert.Equal(t, []interface{}{"submitting", draftID.String()}, db.calls[0].args)
	})

	t.Run("not found", func(t *testing.T) {
		db := &fakeExecutor{rows: []int64{0}}
		err := NewRepository(db).SetStatus(context.Background(), uuid.New(), domain.DraftStatusOpen)
		require.ErrorIs(t, err, ErrDraftNotFound)
	})
}
