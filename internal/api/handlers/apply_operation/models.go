package apply_operation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	applyOperation "github.com/m04kA/SMC-OrderIntakeService/internal/usecase/apply_operation"
)

// OperationRequest HTTP request model.
// Набор обязательных полей зависит от kind.
type OperationRequest struct {
	Kind        string `json:"kind"`
	ItemID      string `json:"itemId"`
	SubTypeID   string `json:"subTypeId,omitempty"`
	SubOptionID string `json:"subOptionId,omitempty"`
	TierID      string `json:"tierId,omitempty"`
	RadioID     string `json:"radioId,omitempty"`
	Index       int    `json:"index,omitempty"`
	Value       string `json:"value,omitempty"`
}

// OperationResponse HTTP response model
type OperationResponse struct {
	*handlers.DraftViewResponse
	Changed bool `json:"changed"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *OperationRequest) ToUseCaseRequest(userID int64, draftID uuid.UUID) *applyOperation.Request {
	return &applyOperation.Request{
		UserID:  userID,
		DraftID: draftID,
		Operation: domain.Operation{
			Kind:        domain.OperationKind(r.Kind),
			ItemID:      r.ItemID,
			SubTypeID:   r.SubTypeID,
			SubOptionID: r.SubOptionID,
			TierID:      r.TierID,
			RadioID:     r.RadioID,
			Index:       r.Index,
			Value:       r.Value,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *applyOperation.Response) *OperationResponse {
	return &OperationResponse{
		DraftViewResponse: handlers.NewDraftViewResponse(resp.DraftID, resp.Revision, resp.Summary),
		Changed:           resp.Changed,
	}
}
