package create_draft

import (
	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	createDraft "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/create_draft"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createDraft.Response) *handlers.DraftViewResponse {
	return handlers.NewDraftViewResponse(resp.DraftID, resp.Revision, resp.Summary).
		WithTimestamps(resp.CreatedAt, resp.CreatedAt)
}
