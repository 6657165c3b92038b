package drafts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	DeleteLastOperation(ctx context.Context, draftID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
