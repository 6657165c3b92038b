package submit_order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OrderIntakeService/internal/engine"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_order: invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("submit_order: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_order: access denied")

	// ErrSubmitInProgress возвращается, когда черновик уже передается в OrderService
	ErrSubmitInProgress = errors.New("submit_order: draft is already being submitted")

	// ErrEmptyOrder возвращается, когда не выбрано ни одной услуги
	ErrEmptyOrder = errors.New("submit_order: no services selected")

	// ErrValidationFailed возвращается, когда выбор содержит ошибки
	ErrValidationFailed = errors.New("submit_order: selection is invalid")

	// ErrOrderRejected возвращается, когда OrderService ответил success=false
	ErrOrderRejected = errors.New("submit_order: order rejected")

	// ErrOrderServiceUnavailable возвращается при недоступности OrderService
	ErrOrderServiceUnavailable = errors.New("submit_order: order service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_order: internal error")
)

// ValidationFailedError содержит полный список ошибок выбора
type ValidationFailedError struct {
	Errors []engine.ValidationError
}

func (e *ValidationFailedError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		messages = append(messages, ve.Error())
	}
	return fmt.Sprintf("%v: %s", ErrValidationFailed, strings.Join(messages, "; "))
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}
