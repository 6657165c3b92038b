package submit_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	draftRepo "github.com/m04kA/SMC-OrderIntakeService/internal/infra/storage/draft"
	orderClient "github.com/m04kA/SMC-OrderIntakeService/internal/integrations/orderservice"
)

// UseCase use case для отправки заказа
type UseCase struct {
	draftRepo   DraftRepository
	txManager   TransactionManager
	orderClient OrderServiceClient
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	txManager TransactionManager,
	orderClient OrderServiceClient,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:   draftRepo,
		txManager:   txManager,
		orderClient: orderClient,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет выбор, нормализует его и передает заказ в OrderService.
// Перед передачей черновик захватывается в сериализуемой транзакции (статус submitting),
// поэтому повторная отправка и новые операции до ответа OrderService отклоняются.
// После успешной передачи черновик удаляется; при ошибке OrderService он снова открывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitOrder: user=%d, draft=%s", req.UserID, req.DraftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Захватываем черновик и собираем заказ
	var payload domain.OrderPayload
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var claimErr error
		payload, claimErr = uc.claim(txCtx, req)
		return claimErr
	})
	if err != nil {
		return nil, err
	}

	// 3. Передаем заказ в OrderService вне транзакции
	result, err := uc.orderClient.CreateOrder(ctx, req.UserID, payload)
	if err != nil {
		uc.reopen(ctx, req)

		if errors.Is(err, orderClient.ErrOrderRejected) {
			uc.logger.Warn("SubmitOrder: order service rejected draft id=%s: %v", req.DraftID, err)
			uc.metrics.IncOrderSubmitted(OutcomeRejected)
			return nil, fmt.Errorf("%w: %v", ErrOrderRejected, err)
		}
		uc.logger.Error("SubmitOrder: failed to create order for draft id=%s: %v", req.DraftID, err)
		uc.metrics.IncOrderSubmitted(OutcomeUnavailable)
		return nil, fmt.Errorf("%w: %v", ErrOrderServiceUnavailable, err)
	}

	uc.metrics.IncOrderSubmitted(OutcomeSuccess)

	// 4. Удаляем черновик: состояние после передачи не хранится
	if err := uc.draftRepo.Delete(ctx, req.DraftID); err != nil && !errors.Is(err, draftRepo.ErrDraftNotFound) {
		// Заказ уже создан, поэтому ошибку только логируем
		uc.logger.Error("SubmitOrder: failed to delete submitted draft id=%s: %v", req.DraftID, err)
	}

	uc.logger.Info("SubmitOrder: draft id=%s submitted with %d items", req.DraftID, len(payload.Items))

	return &Response{
		DraftID: req.DraftID,
		OrderID: result.OrderID,
		Message: result.Message,
		Payload: payload,
	}, nil
}

// claim выполняется в транзакции: блокирует черновик, проверяет выбор
// и переводит черновик в статус submitting
func (uc *UseCase) claim(ctx context.Context, req *Request) (domain.OrderPayload, error) {
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SubmitOrder: draft id=%s not found", req.DraftID)
			return domain.OrderPayload{}, ErrDraftNotFound
		}
		uc.logger.Error("SubmitOrder: failed to get draft id=%s: %v", req.DraftID, err)
		return domain.OrderPayload{}, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.BelongsTo(req.UserID) {
		uc.logger.Warn("SubmitOrder: user=%d is not the owner of draft id=%s", req.UserID, req.DraftID)
		return domain.OrderPayload{}, ErrAccessDenied
	}

	if draft.IsSubmitting() {
		uc.logger.Warn("SubmitOrder: draft id=%s is already being submitted", req.DraftID)
		return domain.OrderPayload{}, ErrSubmitInProgress
	}

	state, err := engine.Replay(draft.Catalog, draft.Operations)
	if err != nil {
		uc.logger.Error("SubmitOrder: failed to replay draft id=%s: %v", req.DraftID, err)
		return domain.OrderPayload{}, fmt.Errorf("%w: failed to replay draft: %v", ErrInternal, err)
	}

	if state.Len() == 0 {
		uc.logger.Warn("SubmitOrder: draft id=%s has no selected services", req.DraftID)
		uc.metrics.IncOrderSubmitted(OutcomeInvalid)
		return domain.OrderPayload{}, ErrEmptyOrder
	}

	if errs := engine.Validate(draft.Catalog, state); len(errs) > 0 {
		uc.logger.Warn("SubmitOrder: draft id=%s has %d validation errors", req.DraftID, len(errs))
		uc.metrics.AddValidationErrors(len(errs))
		uc.metrics.IncOrderSubmitted(OutcomeInvalid)
		return domain.OrderPayload{}, &ValidationFailedError{Errors: errs}
	}

	payload := engine.Normalize(draft.Catalog, state)

	if err := uc.draftRepo.SetStatus(ctx, draft.ID, domain.DraftStatusSubmitting); err != nil {
		uc.logger.Error("SubmitOrder: failed to claim draft id=%s: %v", req.DraftID, err)
		return domain.OrderPayload{}, fmt.Errorf("%w: failed to claim draft: %v", ErrInternal, err)
	}

	return payload, nil
}

// reopen возвращает черновик в редактирование после неудачной передачи
func (uc *UseCase) reopen(ctx context.Context, req *Request) {
	if err := uc.draftRepo.SetStatus(ctx, req.DraftID, domain.DraftStatusOpen); err != nil {
		uc.logger.Error("SubmitOrder: failed to reopen draft id=%s: %v", req.DraftID, err)
	}
}
