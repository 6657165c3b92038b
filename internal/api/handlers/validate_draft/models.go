package validate_draft

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
	"github.com/m04kA/SMC-OrderIntakeService/internal/service/drafts/models"
)

// ValidationResponse HTTP response model
type ValidationResponse struct {
	DraftID uuid.UUID                `json:"draftId"`
	Valid   bool                     `json:"valid"`
	Errors  []engine.ValidationError `json:"errors"`
	Quote   engine.Quote             `json:"quote"`
	Preview *domain.OrderPayload     `json:"preview,omitempty"`
}

// FromServiceReport конвертирует отчет сервиса в HTTP ответ
func FromServiceReport(report *models.ValidationReport) *ValidationResponse {
	errs := report.Errors
	if errs == nil {
		errs = []engine.ValidationError{}
	}

	return &ValidationResponse{
		DraftID: report.DraftID,
		Valid:   report.Valid,
		Errors:  errs,
		Quote:   report.Quote,
		Preview: report.Preview,
	}
}
