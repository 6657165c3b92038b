package get_draft

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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := handlers.DraftID(r)
	if err != nil {
		h.logger.Warn("GET /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	view, err := h.service.GetView(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK,
		handlers.NewDraftViewResponse(view.DraftID, view.Revision, view.Summary).
			WithTimestamps(view.CreatedAt, view.UpdatedAt))
}
