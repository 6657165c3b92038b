package submit_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	submitOrder "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/submit_order"
)

const (
	msgInvalidDraftID     = "некорректный ID черновика"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgEmptyOrder         = "не выбрано ни одной услуги"
	msgOrderRejected      = "заказ отклонен сервисом заказов"
	msgOrderServiceFailed = "сервис заказов временно недоступен"
	msgSubmitInProgress   = "заказ по черновику уже отправляется"
)

type Handler struct {
	useCase SubmitOrderUseCase
	logger  Logger
}

func NewHandler(useCase SubmitOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := handlers.DraftID(r)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/submit - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &submitOrder.Request{UserID: userID, DraftID: draftID})
	if err != nil {
		var validationErr *submitOrder.ValidationFailedError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /drafts/{id}/submit - Selection invalid: draft_id=%s, errors=%d",
				draftID, len(validationErr.Errors))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorsResponse{Errors: validationErr.Errors})

		case errors.Is(err, submitOrder.ErrEmptyOrder):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgEmptyOrder)

		case errors.Is(err, submitOrder.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitOrder.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitOrder.ErrSubmitInProgress):
			h.logger.Warn("POST /drafts/{id}/submit - Submit in progress: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSubmitInProgress)

		case errors.Is(err, submitOrder.ErrOrderRejected):
			h.logger.Warn("POST /drafts/{id}/submit - Order rejected: draft_id=%s, %v", draftID, err)
			handlers.RespondConflict(w, msgOrderRejected)

		case errors.Is(err, submitOrder.ErrOrderServiceUnavailable):
			h.logger.Error("POST /drafts/{id}/submit - Order service unavailable: draft_id=%s, %v", draftID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgOrderServiceFailed)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Order submitted: draft_id=%s, user_id=%d, items=%d",
		draftID, userID, len(resp.Payload.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
