package create_draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

// UseCase use case для создания черновика заказа
type UseCase struct {
	draftRepo DraftRepository
	catalog   CatalogSource
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, catalog CatalogSource, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute создает пустой черновик со снимком текущего каталога.
// Каталог запрашивается один раз за сессию черновика.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDraft: user=%d", req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем каталог
	catalog, err := uc.catalog.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("CreateDraft: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// 3. Сохраняем черновик с пустым журналом
	draft, err := uc.draftRepo.Create(ctx, &domain.Draft{
		ID:      uuid.New(),
		UserID:  req.UserID,
		Status:  domain.DraftStatusOpen,
		Catalog: catalog,
	})
	if err != nil {
		uc.logger.Error("CreateDraft: failed to save draft: %v", err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateDraft: created draft id=%s with %d services", draft.ID, len(catalog.Items))

	return &Response{
		DraftID:   draft.ID,
		Revision:  0,
		Summary:   engine.Summarize(catalog, domain.NewSelectionState()),
		CreatedAt: draft.CreatedAt,
	}, nil
}
