package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/psqlbuilder"
)

const (
	draftsTable     = "order_drafts"
	operationsTable = "order_draft_operations"
)

// Repository репозиторий черновиков заказов.
// Черновик хранится как снимок каталога и журнал операций;
// состояние выбора восстанавливается повтором журнала.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый черновик со снимком каталога.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	catalog, err := json.Marshal(draft.Catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal catalog: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(draftsTable).
		Columns("id", "user_id", "status", "catalog").
		Values(draft.ID, draft.UserID, string(draftStatus(draft.Status)), catalog).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	draft.Status = draftStatus(draft.Status)
	draft.CreatedAt = createdAt.Time
	draft.UpdatedAt = updatedAt.Time

	return draft, nil
}

// GetByID получает черновик вместе с журналом операций.
// Внутри пишущей транзакции строка черновика блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "status", "catalog", "created_at", "updated_at").
		From(draftsTable).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.CanLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var draft domain.Draft
	var status string
	var catalog []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&draft.ID,
		&draft.UserID,
		&status,
		&catalog,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan draft: %v", ErrScanRow, err)
	}

	draft.Status = domain.DraftStatus(status)
	draft.Catalog = &domain.Catalog{}
	if err := json.Unmarshal(catalog, draft.Catalog); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal catalog: %v", ErrScanRow, err)
	}
	draft.CreatedAt = createdAt.Time
	draft.UpdatedAt = updatedAt.Time

	ops, err := r.ListOperations(ctx, id)
	if err != nil {
		return nil, err
	}
	draft.Operations = ops

	return &draft, nil
}

// ListOperations возвращает журнал операций черновика в порядке применения
func (r *Repository) ListOperations(ctx context.Context, draftID uuid.UUID) ([]domain.Operation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("operation").
		From(operationsTable).
		Where(squirrel.Eq{"draft_id": draftID}).
		OrderBy("seq ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOperations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOperations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ops := make([]domain.Operation, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: ListOperations - scan operation: %v", ErrScanRow, err)
		}

		var op domain.Operation
		if err := json.Unmarshal(raw, &op); err != nil {
			return nil, fmt.Errorf("%w: ListOperations - unmarshal operation: %v", ErrScanRow, err)
		}
		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOperations - rows error: %v", ErrScanRow, err)
	}

	return ops, nil
}

// AppendOperation дописывает операцию в конец журнала под номером seq
// и обновляет updated_at черновика
func (r *Repository) AppendOperation(ctx context.Context, draftID uuid.UUID, seq int, op domain.Operation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("%w: AppendOperation - marshal operation: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(operationsTable).
		Columns("draft_id", "seq", "kind", "operation").
		Values(draftID, seq, string(op.Kind), raw).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendOperation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendOperation - execute insert: %v", ErrExecQuery, err)
	}

	return r.touch(ctx, executor, draftID)
}

// DeleteLastOperation удаляет последнюю операцию журнала
func (r *Repository) DeleteLastOperation(ctx context.Context, draftID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(operationsTable).
		Where(squirrel.Eq{"draft_id": draftID}).
		Where(squirrel.Expr("seq = (SELECT MAX(seq) FROM "+operationsTable+" WHERE draft_id = ?)", draftID.String())).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteLastOperation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteLastOperation - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteLastOperation - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoOperations
	}

	return r.touch(ctx, executor, draftID)
}

// Delete удаляет черновик; журнал операций удаляется каскадно
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(draftsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// DeleteStale удаляет черновики, не менявшиеся с момента before.
// Возвращает количество удаленных черновиков.
func (r *Repository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(draftsTable).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// SetStatus переводит черновик в новый статус и обновляет updated_at
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.DraftStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(draftsTable).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// draftStatus новый черновик без статуса считается открытым
func draftStatus(status domain.DraftStatus) domain.DraftStatus {
	if status == "" {
		return domain.DraftStatusOpen
	}
	return status
}

func (r *Repository) touch(ctx context.Context, executor DBExecutor, draftID uuid.UUID) error {
	query, args, err := psqlbuilder.Update(draftsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": draftID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: touch - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: touch - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: touch - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}
