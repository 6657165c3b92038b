package submit_order

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
)

// Значения метки outcome
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Request модель запроса на отправку заказа
type Request struct {
	UserID  int64     // ID пользователя
	DraftID uuid.UUID // ID черновика
}

// Response модель ответа после передачи заказа в OrderService
type Response struct {
	DraftID uuid.UUID           // ID отправленного (уже удаленного) черновика
	OrderID *string             // ID заказа, если OrderService его вернул
	Message *string             // Сообщение OrderService
	Payload domain.OrderPayload // Нормализованный заказ, переданный без изменений
}
