package undo_operation

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
	msgNothingToUndo  = "нет операций для отмены"
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

// Handle POST /api/v1/drafts/{draftId}/undo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := handlers.DraftID(r)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/undo - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/undo - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	view, err := h.service.Undo(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/undo - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/undo - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrNothingToUndo):
			h.logger.Warn("POST /drafts/{id}/undo - Nothing to undo: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNothingToUndo)

		case errors.Is(err, drafts.ErrDraftSubmitting):
			h.logger.Warn("POST /drafts/{id}/undo - Draft is being submitted: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSubmitting)

		default:
			h.logger.Error("POST /drafts/{id}/undo - Failed to undo: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/undo - Undone: draft_id=%s, revision=%d", draftID, view.Revision)
	handlers.RespondJSON(w, http.StatusOK,
		handlers.NewDraftViewResponse(view.DraftID, view.Revision, view.Summary).
			WithTimestamps(view.CreatedAt, view.UpdatedAt))
}
