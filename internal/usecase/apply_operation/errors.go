package apply_operation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_operation: invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("apply_operation: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("apply_operation: access denied")

	// ErrDraftSubmitting возвращается, когда черновик уже передается в OrderService
	ErrDraftSubmitting = errors.New("apply_operation: draft is being submitted")

	// ErrInvalidReference возвращается, когда операция ссылается на id вне каталога черновика
	ErrInvalidReference = errors.New("apply_operation: invalid catalog reference")

	// ErrTooManyOperations возвращается, когда журнал черновика переполнен
	ErrTooManyOperations = errors.New("apply_operation: too many operations")

	// ErrTooManyFreeTextEntries возвращается при превышении лимита строк свободного текста
	ErrTooManyFreeTextEntries = errors.New("apply_operation: too many free text entries")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_operation: internal error")
)
