package delete_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts"
)

const (
	msgInvalidDraftID = "некорректный ID черновика"
	msgNotFound       = "черновик не найден"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgSubmitting     = "заказ по черновику уже отправляется"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := handlers.DraftID(r)
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), draftID, userID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrDraftSubmitting):
			h.logger.Warn("DELETE /drafts/{id} - Draft is being submitted: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSubmitting)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to delete draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s, user_id=%d", draftID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
