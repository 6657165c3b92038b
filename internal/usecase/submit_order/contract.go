package submit_order

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.DraftStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderServiceClient интерфейс клиента для OrderService
type OrderServiceClient interface {
	CreateOrder(ctx context.Context, userID int64, payload domain.OrderPayload) (*domain.SubmitResult, error)
}

// MetricsRecorder счетчики отправки заказов
type MetricsRecorder interface {
	AddValidationErrors(n int)
	IncOrderSubmitted(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
