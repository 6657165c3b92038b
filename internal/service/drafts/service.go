package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	draftRepo "github.com/m04kA/SMC-OrderIntakeService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts/models"
)

// Service сервис для чтения, отмены операций и удаления черновиков
type Service struct {
	draftRepo DraftRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(draftRepo DraftRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		draftRepo: draftRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetView возвращает текущее состояние черновика.
// Черновик и журнал читаются в одной транзакции только для чтения.
func (s *Service) GetView(ctx context.Context, draftID uuid.UUID, userID int64) (*models.DraftView, error) {
	s.logger.Info("GetView: draft=%s, user=%d", draftID, userID)

	var view *models.DraftView
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		draft, state, err := s.load(txCtx, draftID, userID)
		if err != nil {
			return err
		}
		view = models.FromDomainDraft(draft, state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Validate проверяет выбор целиком. Для корректного выбора
// дополнительно возвращает нормализованный заказ.
func (s *Service) Validate(ctx context.Context, draftID uuid.UUID, userID int64) (*models.ValidationReport, error) {
	s.logger.Info("Validate: draft=%s, user=%d", draftID, userID)

	var (
		draft *domain.Draft
		state domain.SelectionState
	)
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		draft, state, err = s.load(txCtx, draftID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	errs := engine.Validate(draft.Catalog, state)
	report := &models.ValidationReport{
		DraftID: draft.ID,
		Valid:   len(errs) == 0,
		Errors:  errs,
		Quote:   engine.CalculateQuote(draft.Catalog, state),
	}

	if report.Valid {
		payload := engine.Normalize(draft.Catalog, state)
		report.Preview = &payload
	}

	s.logger.Info("Validate: draft=%s has %d errors", draftID, len(errs))
	return report, nil
}

// Undo удаляет последнюю операцию журнала и возвращает восстановленное состояние
func (s *Service) Undo(ctx context.Context, draftID uuid.UUID, userID int64) (*models.DraftView, error) {
	s.logger.Info("Undo: draft=%s, user=%d", draftID, userID)

	var view *models.DraftView

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := s.getOwned(txCtx, draftID, userID)
		if err != nil {
			return err
		}

		if draft.IsSubmitting() {
			s.logger.Warn("Undo: draft=%s is being submitted", draftID)
			return ErrDraftSubmitting
		}

		if !draft.HasOperations() {
			s.logger.Warn("Undo: draft=%s has no operations", draftID)
			return ErrNothingToUndo
		}

		if err := s.draftRepo.DeleteLastOperation(txCtx, draftID); err != nil {
			if errors.Is(err, draftRepo.ErrNoOperations) {
				return ErrNothingToUndo
			}
			s.logger.Error("Undo: failed to delete last operation of draft=%s: %v", draftID, err)
			return fmt.Errorf("%w: Undo - repository error: %v", ErrInternal, err)
		}

		// Состояние без последней операции = повтор укороченного журнала
		draft.Operations = draft.Operations[:len(draft.Operations)-1]
		state, err := engine.Replay(draft.Catalog, draft.Operations)
		if err != nil {
			s.logger.Error("Undo: failed to replay draft=%s: %v", draftID, err)
			return fmt.Errorf("%w: Undo - replay: %v", ErrInternal, err)
		}

		view = models.FromDomainDraft(draft, state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Undo: draft=%s at revision %d", draftID, view.Revision)
	return view, nil
}

// Delete отменяет черновик: состояние просто удаляется
func (s *Service) Delete(ctx context.Context, draftID uuid.UUID, userID int64) error {
	s.logger.Info("Delete: draft=%s, user=%d", draftID, userID)

	draft, err := s.getOwned(ctx, draftID, userID)
	if err != nil {
		return err
	}

	if draft.IsSubmitting() {
		s.logger.Warn("Delete: draft=%s is being submitted", draftID)
		return ErrDraftSubmitting
	}

	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		s.logger.Error("Delete: repository error for draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: draft=%s discarded", draftID)
	return nil
}

// PurgeStale удаляет черновики, не менявшиеся дольше ttl
func (s *Service) PurgeStale(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("%w: ttl must be positive", ErrInvalidInput)
	}

	deleted, err := s.draftRepo.DeleteStale(ctx, time.Now().Add(-ttl))
	if err != nil {
		s.logger.Error("PurgeStale: repository error: %v", err)
		return 0, fmt.Errorf("%w: PurgeStale - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("PurgeStale: removed %d drafts older than %s", deleted, ttl)
	}
	return deleted, nil
}

// RunPurge периодически удаляет устаревшие черновики до отмены ctx
func (s *Service) RunPurge(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PurgeStale(ctx, ttl); err != nil {
				s.logger.Warn("RunPurge: %v", err)
			}
		}
	}
}

// load загружает черновик владельца и восстанавливает состояние выбора
func (s *Service) load(ctx context.Context, draftID uuid.UUID, userID int64) (*domain.Draft, domain.SelectionState, error) {
	draft, err := s.getOwned(ctx, draftID, userID)
	if err != nil {
		return nil, domain.SelectionState{}, err
	}

	state, err := engine.Replay(draft.Catalog, draft.Operations)
	if err != nil {
		s.logger.Error("load: failed to replay draft=%s: %v", draftID, err)
		return nil, domain.SelectionState{}, fmt.Errorf("%w: replay: %v", ErrInternal, err)
	}

	return draft, state, nil
}

// getOwned загружает черновик и проверяет права доступа
func (s *Service) getOwned(ctx context.Context, draftID uuid.UUID, userID int64) (*domain.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("draft=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("repository error for draft=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !draft.BelongsTo(userID) {
		s.logger.Warn("access denied for user=%d to draft=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	return draft, nil
}
