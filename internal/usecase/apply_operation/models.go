package apply_operation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

// Значения метки outcome
const (
	OutcomeApplied  = "applied"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
)

// Request модель запроса на применение операции
type Request struct {
	UserID    int64            // ID пользователя
	DraftID   uuid.UUID        // ID черновика
	Operation domain.Operation // Операция над состоянием выбора
}

// Response модель ответа с новым состоянием черновика
type Response struct {
	DraftID  uuid.UUID      // ID черновика
	Revision int            // Количество операций в журнале после применения
	Changed  bool           // false, если операция ничего не изменила
	Summary  engine.Summary // Состояние выбора для отображения
}
