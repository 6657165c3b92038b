package apply_operation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	AppendOperation(ctx context.Context, draftID uuid.UUID, seq int, op domain.Operation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчики применённых операций
type MetricsRecorder interface {
	IncOperation(kind string, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
