package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

// DraftViewResponse представление черновика, общее для всех эндпоинтов черновиков
type DraftViewResponse struct {
	DraftID   uuid.UUID                `json:"draftId"`
	Revision  int                      `json:"revision"`
	Items     []engine.ItemStatus      `json:"items"`
	Errors    []engine.ValidationError `json:"errors"`
	Quote     engine.Quote             `json:"quote"`
	CreatedAt *time.Time               `json:"createdAt,omitempty"`
	UpdatedAt *time.Time               `json:"updatedAt,omitempty"`
}

// NewDraftViewResponse собирает ответ по состоянию выбора
func NewDraftViewResponse(draftID uuid.UUID, revision int, summary engine.Summary) *DraftViewResponse {
	return &DraftViewResponse{
		DraftID:  draftID,
		Revision: revision,
		Items:    summary.Items,
		Errors:   summary.Errors,
		Quote:    summary.Quote,
	}
}

// WithTimestamps добавляет время создания и изменения, если оно известно
func (r *DraftViewResponse) WithTimestamps(createdAt, updatedAt time.Time) *DraftViewResponse {
	if !createdAt.IsZero() {
		r.CreatedAt = &createdAt
	}
	if !updatedAt.IsZero() {
		r.UpdatedAt = &updatedAt
	}
	return r
}
