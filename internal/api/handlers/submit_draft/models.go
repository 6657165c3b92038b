package submit_draft

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	submitOrder "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/submit_order"
)

// SubmitResponse HTTP response model
type SubmitResponse struct {
	DraftID uuid.UUID           `json:"draftId"`
	Success bool                `json:"success"`
	OrderID *string             `json:"orderID,omitempty"`
	Message *string             `json:"message,omitempty"`
	Order   domain.OrderPayload `json:"order"`
}

// ValidationErrorsResponse тело ответа 422
type ValidationErrorsResponse struct {
	Errors []engine.ValidationError `json:"errors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *submitOrder.Response) *SubmitResponse {
	return &SubmitResponse{
		DraftID: resp.DraftID,
		Success: true,
		OrderID: resp.OrderID,
		Message: resp.Message,
		Order:   resp.Payload,
	}
}
