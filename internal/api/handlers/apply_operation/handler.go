package apply_operation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	applyOperation "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/apply_operation"
)

const (
	msgInvalidDraftID     = "некорректный ID черновика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректная операция"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidReference   = "операция ссылается на отсутствующую в каталоге позицию"
	msgTooManyOperations  = "превышено количество изменений черновика"
	msgTooManyFreeText    = "превышено количество строк комментария"
	msgDraftSubmitting    = "заказ по черновику уже отправляется"
)

type Handler struct {
	useCase ApplyOperationUseCase
	logger  Logger
}

func NewHandler(useCase ApplyOperationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/operations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := handlers.DraftID(r)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/operations - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/operations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req OperationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/operations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, draftID))
	if err != nil {
		switch {
		case errors.Is(err, applyOperation.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/operations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, applyOperation.ErrInvalidReference):
			h.logger.Warn("POST /drafts/{id}/operations - Invalid reference: draft_id=%s, %v", draftID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidReference)

		case errors.Is(err, applyOperation.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/operations - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyOperation.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/operations - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, applyOperation.ErrDraftSubmitting):
			h.logger.Warn("POST /drafts/{id}/operations - Draft is being submitted: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftSubmitting)

		case errors.Is(err, applyOperation.ErrTooManyOperations):
			handlers.RespondConflict(w, msgTooManyOperations)

		case errors.Is(err, applyOperation.ErrTooManyFreeTextEntries):
			handlers.RespondConflict(w, msgTooManyFreeText)

		default:
			h.logger.Error("POST /drafts/{id}/operations - Failed to apply operation: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
