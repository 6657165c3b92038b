package create_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	createDraft "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/create_draft"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные входные данные"
	msgCatalogUnavailable = "каталог услуг временно недоступен"
)

type Handler struct {
	useCase CreateDraftUseCase
	logger  Logger
}

func NewHandler(useCase CreateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &createDraft.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, createDraft.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createDraft.ErrCatalogUnavailable):
			h.logger.Error("POST /drafts - Catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s, user_id=%d", resp.DraftID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
