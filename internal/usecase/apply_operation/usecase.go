package apply_operation

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	draftRepo "github.com/m04kA/SMC-OrderIntakeService/internal/infra/storage/draft"
)

// UseCase use case для применения операции к черновику
type UseCase struct {
	draftRepo DraftRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute применяет операцию к состоянию черновика и дописывает её в журнал.
// Чтение журнала, повтор и запись выполняются в сериализуемой транзакции,
// поэтому конкурентные операции над одним черновиком не теряются.
// Операции без эффекта (no-op) тоже попадают в журнал.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyOperation: user=%d, draft=%s, kind=%s, item=%s",
		req.UserID, req.DraftID, req.Operation.Kind, req.Operation.ItemID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyOperation: validation failed: %v", err)
		uc.metrics.IncOperation(string(req.Operation.Kind), OutcomeRejected)
		return nil, err
	}

	var response *Response

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем черновик с журналом (FOR UPDATE)
		draft, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				uc.logger.Warn("ApplyOperation: draft id=%s not found", req.DraftID)
				return ErrDraftNotFound
			}
			uc.logger.Error("ApplyOperation: failed to get draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		// 2.2. Проверяем владельца
		if !draft.BelongsTo(req.UserID) {
			uc.logger.Warn("ApplyOperation: user=%d is not the owner of draft id=%s", req.UserID, req.DraftID)
			return ErrAccessDenied
		}

		if draft.IsSubmitting() {
			uc.logger.Warn("ApplyOperation: draft id=%s is being submitted", req.DraftID)
			return ErrDraftSubmitting
		}

		// 2.3. Проверяем размер журнала
		if len(draft.Operations) >= domain.MaxOperationsPerDraft {
			uc.logger.Warn("ApplyOperation: draft id=%s reached %d operations", req.DraftID, len(draft.Operations))
			return ErrTooManyOperations
		}

		// 2.4. Восстанавливаем состояние повтором журнала
		state, err := engine.Replay(draft.Catalog, draft.Operations)
		if err != nil {
			uc.logger.Error("ApplyOperation: failed to replay draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to replay draft: %v", ErrInternal, err)
		}

		if freeTextLimitReached(state, req.Operation) {
			uc.logger.Warn("ApplyOperation: free text limit reached for item=%s", req.Operation.ItemID)
			return ErrTooManyFreeTextEntries
		}

		// 2.5. Применяем операцию
		next, err := engine.Apply(draft.Catalog, state, req.Operation)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidReference) {
				uc.logger.Warn("ApplyOperation: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidReference, err)
			}
			uc.logger.Error("ApplyOperation: failed to apply operation: %v", err)
			return fmt.Errorf("%w: failed to apply operation: %v", ErrInternal, err)
		}

		// 2.6. Дописываем операцию в журнал
		seq := len(draft.Operations)
		if err := uc.draftRepo.AppendOperation(txCtx, draft.ID, seq, req.Operation); err != nil {
			uc.logger.Error("ApplyOperation: failed to append operation: %v", err)
			return fmt.Errorf("%w: failed to append operation: %v", ErrInternal, err)
		}

		response = &Response{
			DraftID:  draft.ID,
			Revision: seq + 1,
			Changed:  !reflect.DeepEqual(state, next),
			Summary:  engine.Summarize(draft.Catalog, next),
		}
		return nil
	})

	if err != nil {
		uc.metrics.IncOperation(string(req.Operation.Kind), OutcomeRejected)
		return nil, err
	}

	outcome := OutcomeApplied
	if !response.Changed {
		outcome = OutcomeNoop
		uc.logger.Info("ApplyOperation: operation %s on item=%s had no effect", req.Operation.Kind, req.Operation.ItemID)
	}
	uc.metrics.IncOperation(string(req.Operation.Kind), outcome)

	uc.logger.Info("ApplyOperation: draft id=%s at revision %d", response.DraftID, response.Revision)
	return response, nil
}
