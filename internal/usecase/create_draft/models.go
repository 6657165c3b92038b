package create_draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

// Request модель запроса на создание черновика
type Request struct {
	UserID int64 // ID пользователя
}

// Response модель ответа с созданным черновиком
type Response struct {
	DraftID   uuid.UUID      // ID черновика
	Revision  int            // Количество операций в журнале (0 для нового)
	Summary   engine.Summary // Состояние выбора для отображения
	CreatedAt time.Time      // Время создания
}
