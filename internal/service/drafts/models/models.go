package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

// DraftView состояние черновика для отображения
type DraftView struct {
	DraftID   uuid.UUID
	Revision  int
	Summary   engine.Summary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidationReport результат проверки черновика перед отправкой
type ValidationReport struct {
	DraftID uuid.UUID
	Valid   bool
	Errors  []engine.ValidationError
	Quote   engine.Quote
	Preview *domain.OrderPayload // нормализованный заказ, только для корректного выбора
}

// FromDomainDraft собирает представление черновика по восстановленному состоянию
func FromDomainDraft(draft *domain.Draft, state domain.SelectionState) *DraftView {
	return &DraftView{
		DraftID:   draft.ID,
		Revision:  len(draft.Operations),
		Summary:   engine.Summarize(draft.Catalog, state),
		CreatedAt: draft.CreatedAt,
		UpdatedAt: draft.UpdatedAt,
	}
}
